package search

import "errors"

// ErrInvalidArgument means the caller sent an unusable request. No upstream call
// is made when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")
