package alert

import "context"

// UseCase defines the alert dispatching interface.
type UseCase interface {
	// DispatchStoreFailure reports a Redis failure that cost the pipeline a
	// message. Repeated failures of the same store operation inside the
	// cooldown window are suppressed and return nil.
	DispatchStoreFailure(ctx context.Context, input StoreFailureInput) error
}
