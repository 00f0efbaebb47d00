package planpdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failures a caller can act on.
var (
	// ErrCapabilityUnavailable means the drawing surface could not be built
	// or failed during the pass. No artifact is produced.
	ErrCapabilityUnavailable = errors.New("planpdf: drawing capability unavailable")
	// ErrExport means an exporter rejected a finished artifact. The artifact
	// is unchanged and can be saved again.
	ErrExport = errors.New("planpdf: export failed")
	// ErrBackend means the plan service reported a failure instead of a plan.
	ErrBackend = errors.New("planpdf: plan backend error")
	// ErrInvalidParam is returned for missing or malformed arguments.
	ErrInvalidParam = errors.New("planpdf: invalid parameter")
)

// RenderError represents an error that occurred during a specific operation.
// It wraps an underlying error and includes the operation name for context.
type RenderError struct {
	Op  string // operation name, e.g. "Render", "Save"
	Err error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("planpdf.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("planpdf.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// newRenderError wraps err with op, classified under kind.
func newRenderError(op string, kind, err error) *RenderError {
	if err == nil {
		return &RenderError{Op: op, Err: kind}
	}
	return &RenderError{Op: op, Err: fmt.Errorf("%w: %w", kind, err)}
}
