package planpdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Verify parses and validates a PDF and returns its page count.
func Verify(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, newRenderError("Verify", ErrInvalidParam, nil)
	}
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, &RenderError{Op: "Verify", Err: fmt.Errorf("pdfcpu read: %w", err)}
	}
	return ctx.PageCount, nil
}
