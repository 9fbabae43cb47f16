package binding

import (
	"errors"
	"fmt"
)

var (
	// ErrIdentityField is returned when binding the schema identity, which is
	// rendered as a header and never as a control.
	ErrIdentityField = errors.New("binding: identity field cannot be bound")
	// ErrRefreshInProgress is returned when a path refresh is requested while
	// another refresh of the same field is still running.
	ErrRefreshInProgress = errors.New("binding: refresh already in progress")
	// ErrClosed is returned when using a session after Close.
	ErrClosed = errors.New("binding: session closed")
	// ErrNotSelectable is returned when a path field was rendered with a
	// control that cannot hold options.
	ErrNotSelectable = errors.New("binding: control does not expose options")
)

// OptionResolutionError reports a path refresh that left a field without any
// legal option. It is logged rather than returned; the trigger is skipped for
// that refresh.
type OptionResolutionError struct {
	Field string
	Path  string
}

func (e *OptionResolutionError) Error() string {
	return fmt.Sprintf("binding: path %q for %q resolved no options", e.Path, e.Field)
}
