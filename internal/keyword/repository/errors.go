package repository

import "errors"

var ErrStoreUnavailable = errors.New("keyword rule store unavailable")
