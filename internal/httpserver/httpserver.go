package httpserver

import (
	"context"
	"errors"
	"net/http"
)

// Run serves HTTP until Shutdown is called. It returns nil on a clean stop,
// including when Shutdown ran first.
func (srv *HTTPServer) Run() error {
	srv.logger.Infof(context.Background(), "HTTP server started on %s", srv.srv.Addr)

	if err := srv.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (srv *HTTPServer) Shutdown(ctx context.Context) error {
	return srv.srv.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
