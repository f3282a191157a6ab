package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Backend errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrBackendUnreachable = fmt.Errorf("backend unreachable")
	ErrInvalidResponse    = fmt.Errorf("invalid backend response")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrBusy               = fmt.Errorf("request already in flight")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
