package param

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownParameter is returned for names the schema does not declare.
	ErrUnknownParameter = errors.New("param: unknown parameter")
	// ErrDuplicateParameter is returned when two parameters share a name.
	ErrDuplicateParameter = errors.New("param: duplicate parameter")
	// ErrReservedName is returned when a parameter uses the identity field name.
	ErrReservedName = errors.New("param: name is reserved for the schema identity")
	// ErrConstant is returned when writing to a constant parameter.
	ErrConstant = errors.New("param: parameter is constant")
	// ErrOutOfBounds is returned when a numeric value violates the hard bounds.
	ErrOutOfBounds = errors.New("param: value out of bounds")
	// ErrNotAnOption is returned when a selector value is not a legal object.
	ErrNotAnOption = errors.New("param: value is not a legal option")
	// ErrType is returned when a value has the wrong shape for the kind.
	ErrType = errors.New("param: value has the wrong type")
	// ErrNoPath is returned when Update is called on a non-dependent parameter.
	ErrNoPath = errors.New("param: parameter has no path")
	// ErrNotAction is returned when invoking a parameter that is not an action.
	ErrNotAction = errors.New("param: parameter is not an action")
	// ErrSchemaBound is returned when claiming a schema that another owner
	// already holds.
	ErrSchemaBound = errors.New("param: schema is already bound")
)

// ValidationError describes a rejected write.
type ValidationError struct {
	Param string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s=%v", e.Err, e.Param, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
