package layout

import (
	"strconv"
	"strings"

	"github.com/lvillar/planpdf/extract"
	"github.com/lvillar/planpdf/stats"
)

// Section is one step of a render pass. It draws from cursor c onward and
// returns the cursor after its last block.
type Section interface {
	Render(f *Flow, c Cursor) (Cursor, error)
}

// Header draws the document title, the stats box and, when known, the coach
// strategy line. It leaves the cursor at the theme's StartY.
type Header struct {
	Title    string
	Stats    stats.Summary
	Overview extract.Field[extract.Overview]
}

func (h Header) Render(f *Flow, c Cursor) (Cursor, error) {
	th := f.theme
	cv := f.canvas
	pageW, _ := cv.PageSize()
	center := pageW / 2

	cv.DrawText(h.Title, center, th.TitleY, TextStyle{Style: "B", Size: th.TitleSize, Color: th.Accent, Align: AlignCenter})
	cv.DrawRect(th.Margin, th.StatsBoxY, pageW-2*th.Margin, th.StatsBoxH, BoxStyle{
		Fill:      &th.AccentTint,
		Stroke:    &th.Accent,
		LineWidth: 0.3,
	})
	cv.DrawText(h.Stats.Line(), center, th.StatsTextY, TextStyle{Size: th.BodySize, Color: th.Ink, Align: AlignCenter})

	if line := h.strategy(); line != "" {
		cv.DrawText(line, center, th.StrategyY, TextStyle{Style: "I", Size: th.BodySize - 1, Color: th.Body, Align: AlignCenter})
	}

	if c.Y < th.StartY {
		c.Y = th.StartY
	}
	return c, nil
}

func (h Header) strategy() string {
	if ov, ok := h.Overview.Get(); ok {
		plan, hasPlan := ov.PlanType.Get()
		focus, hasFocus := ov.WeeklyFocus.Get()
		switch {
		case hasPlan && hasFocus:
			return "Coach Strategy: " + plan + " — " + focus
		case hasPlan:
			return "Coach Strategy: " + plan
		case hasFocus:
			return "Coach Strategy: " + focus
		}
	}
	if h.Stats.Strategy != "" {
		return "Coach Strategy: " + h.Stats.Strategy
	}
	return ""
}

// FooterText is the default footer drawn on page p of total.
func FooterText(page, total int, product string) string {
	return FormatFooter(DefaultFooterFormat, page, total, product)
}

// FormatFooter expands the {page}, {pages} and {product} placeholders of format.
func FormatFooter(format string, page, total int, product string) string {
	return strings.NewReplacer(
		"{page}", strconv.Itoa(page),
		"{pages}", strconv.Itoa(total),
		"{product}", product,
	).Replace(format)
}
