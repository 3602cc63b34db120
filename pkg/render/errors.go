package render

import (
	ierrors "github.com/strand-ui/strand/internal/errors"
)

// Error codes surfaced by the renderer.
const (
	codeInvalidNode = "R001"
	codeComponent   = "R002"
	codeSink        = "R003"
)

// InvalidNodeError reports a node whose name is neither a string tag nor a
// component, or a child item of a type the walker does not understand.
type InvalidNodeError struct {
	// Value is the offending node or child item.
	Value any

	err *ierrors.Error
}

func invalidNode(value any) *InvalidNodeError {
	return &InvalidNodeError{
		Value: value,
		err:   ierrors.Newf(codeInvalidNode, ierrors.CategoryValidation, "invalid node of type %T", value),
	}
}

func (e *InvalidNodeError) Error() string { return e.err.Error() }
func (e *InvalidNodeError) Unwrap() error { return e.err }

// ComponentError wraps a failure raised by a component's will-mount hook,
// child-context hook, or render. It carries the component's display name
// and the original cause.
type ComponentError struct {
	// Component is the display name of the failing component.
	Component string

	err *ierrors.Error
}

func componentError(name string, cause error) *ComponentError {
	return &ComponentError{
		Component: name,
		err:       ierrors.Newf(codeComponent, ierrors.CategoryComponent, "component %s failed", name).Wrap(cause),
	}
}

func (e *ComponentError) Error() string { return e.err.Error() }

// Unwrap exposes the cause chain for errors.Is/As.
func (e *ComponentError) Unwrap() error { return e.err }

// SinkError wraps a failure of the downstream sink: a writer error, a
// closed stream, or a cancelled render context. It aborts the walk; no
// further chunks follow it.
type SinkError struct {
	err *ierrors.Error
}

func sinkError(cause error) *SinkError {
	return &SinkError{
		err: ierrors.New(codeSink, ierrors.CategorySink, "output sink failed").Wrap(cause),
	}
}

func (e *SinkError) Error() string { return e.err.Error() }
func (e *SinkError) Unwrap() error { return e.err }
