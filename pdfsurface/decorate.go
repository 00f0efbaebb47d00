package pdfsurface

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/barcode"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/image/draw"
)

const (
	logoName    = "brand-logo"
	maxLogoPx   = 600
	logoTop     = 6
	qrTop       = 4
	watermarkPt = 60
)

// decorations are drawn when a page is started, before any content.
type decorations struct {
	tr         func(string) string
	margin     float64
	logo       string
	logoHeight float64
	qrKey      string
	qrSize     float64
	letterhead *letterhead
	watermark  string
	wmColor    [3]int
	font       string
}

type letterhead struct {
	imp *gofpdi.Importer
	tpl int
}

func prepareDecorations(pdf *fpdf.Fpdf, cfg config, tr func(string) string) (decorations, error) {
	d := decorations{
		tr:         tr,
		margin:     cfg.margin,
		logoHeight: cfg.logoHeight,
		qrSize:     cfg.qrSize,
		watermark:  cfg.watermark,
		wmColor:    cfg.watermarkRGB,
		font:       cfg.fontFamily,
	}

	if cfg.logo != nil {
		data, err := encodeLogo(cfg.logo, maxLogoPx)
		if err != nil {
			return d, fmt.Errorf("pdfsurface: logo: %w", err)
		}
		pdf.RegisterImageOptionsReader(logoName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(data))
		d.logo = logoName
	}

	if cfg.letterhead != "" {
		lh, err := importLetterhead(pdf, cfg.letterhead)
		if err != nil {
			return d, err
		}
		d.letterhead = lh
	}

	if cfg.qrPayload != "" {
		code, err := qr.Encode(cfg.qrPayload, qr.M, qr.Auto)
		if err != nil {
			return d, fmt.Errorf("pdfsurface: qr code: %w", err)
		}
		d.qrKey = barcode.Register(code)
	}
	return d, nil
}

func (d decorations) apply(pdf *fpdf.Fpdf, page int, w, h float64) {
	if d.letterhead != nil {
		d.letterhead.imp.UseImportedTemplate(pdf, d.letterhead.tpl, 0, 0, w, h)
	}
	if d.watermark != "" {
		d.drawWatermark(pdf, w, h)
	}
	if page != 1 {
		return
	}
	if d.logo != "" {
		pdf.ImageOptions(d.logo, d.margin, logoTop, 0, d.logoHeight, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}
	if d.qrKey != "" {
		barcode.Barcode(pdf, d.qrKey, w-d.margin-d.qrSize, qrTop, d.qrSize, d.qrSize, false)
	}
}

// drawWatermark renders the watermark rotated 45 degrees around the page center.
func (d decorations) drawWatermark(pdf *fpdf.Fpdf, w, h float64) {
	text := d.tr(d.watermark)
	pdf.SetFont(d.font, "B", watermarkPt)
	pdf.SetTextColor(d.wmColor[0], d.wmColor[1], d.wmColor[2])
	pdf.SetAlpha(0.3, "Normal")

	cx, cy := w/2, h/2
	pdf.TransformBegin()
	pdf.TransformRotate(45, cx, cy)
	pdf.Text(cx-pdf.GetStringWidth(text)/2, cy+watermarkPt/6, text)
	pdf.TransformEnd()

	pdf.SetAlpha(1, "Normal")
}

// importLetterhead validates the file with pdfcpu before handing it to
// gofpdi, which panics on malformed input.
func importLetterhead(pdf *fpdf.Fpdf, path string) (lh *letterhead, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdfsurface: letterhead: %w", err)
	}
	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("pdfsurface: letterhead %s: %w", path, err)
	}
	if ctx.PageCount < 1 {
		return nil, fmt.Errorf("pdfsurface: letterhead %s: %w", path, errors.New("no pages"))
	}

	defer func() {
		if r := recover(); r != nil {
			lh, err = nil, fmt.Errorf("pdfsurface: letterhead %s: %v", path, r)
		}
	}()
	imp := gofpdi.NewImporter()
	tpl := imp.ImportPage(pdf, path, 1, "/MediaBox")
	return &letterhead{imp: imp, tpl: tpl}, nil
}

// encodeLogo decodes an image, scales it down to at most maxWidth pixels wide
// and re-encodes it as PNG.
func encodeLogo(r io.Reader, maxWidth int) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxWidth {
		newH := max(h*maxWidth/w, 1)
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
