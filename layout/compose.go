package layout

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lvillar/planpdf/extract"
	"github.com/lvillar/planpdf/stats"
)

// ErrNoCanvas is returned when Compose is called without a canvas.
var ErrNoCanvas = errors.New("layout: no canvas")

// Input is everything a render pass draws.
type Input struct {
	Title       string
	Stats       stats.Summary
	ProductName string
	Plan        extract.Plan
}

// Composer runs the sections of a plan in a fixed order over a canvas and
// stamps the page footers once the page count is final.
type Composer struct {
	Theme  Theme
	Logger *slog.Logger
}

// Sections returns the ordered render steps for in.
func (cm Composer) Sections(in Input) []Section {
	return []Section{
		Header{Title: in.Title, Stats: in.Stats, Overview: in.Plan.Overview},
		WorkoutSection{Entries: in.Plan.Workouts},
		NutritionSection{Table: in.Plan.Nutrition},
		MindsetSection{Entries: in.Plan.Mindset},
	}
}

// Compose draws in onto cv, which must be empty, and returns the final cursor.
// Sections run strictly in order; the footer pass runs last over every page.
// A zero Theme means DefaultTheme.
func (cm Composer) Compose(cv Canvas, in Input) (Cursor, error) {
	if cv == nil {
		return Cursor{}, ErrNoCanvas
	}
	if cm.Theme == (Theme{}) {
		cm.Theme = DefaultTheme()
	}
	logger := cm.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reportDegraded(logger, in.Plan)

	f := NewFlow(cv, cm.Theme)
	cv.NewPage()
	c := Cursor{Y: cm.Theme.Top, Page: 1}

	for _, s := range cm.Sections(in) {
		var err error
		if c, err = s.Render(f, c); err != nil {
			return c, err
		}
	}
	cm.stampFooters(cv, in.ProductName)

	if err := cv.Err(); err != nil {
		return c, fmt.Errorf("layout: canvas: %w", err)
	}
	logger.Debug("plan composed", "pages", cv.PageCount(), "end_y", c.Y)
	return c, nil
}

func (cm Composer) stampFooters(cv Canvas, product string) {
	th := cm.Theme
	pageW, pageH := cv.PageSize()
	st := TextStyle{Size: th.FooterSize, Color: th.Muted, Align: AlignCenter}
	format := th.FooterFormat
	if format == "" {
		format = DefaultFooterFormat
	}
	total := cv.PageCount()
	for p := 1; p <= total; p++ {
		cv.SetActivePage(p)
		cv.DrawText(FormatFooter(format, p, total, product), pageW/2, pageH-th.FooterOffset, st)
	}
}

// reportDegraded logs records that fell back to default values.
func reportDegraded(logger *slog.Logger, p extract.Plan) {
	untitled := 0
	for _, w := range p.Workouts {
		if !w.Title.OK() {
			untitled++
		}
	}
	undated := 0
	for _, m := range p.Mindset {
		if !m.Day.OK() || !m.Quote.OK() {
			undated++
		}
	}
	_, adjusted := p.Nutrition.Grid()
	if untitled+undated+adjusted == 0 {
		return
	}
	logger.Debug("plan records used defaults",
		"untitled_workouts", untitled,
		"incomplete_mindset", undated,
		"resized_table_rows", adjusted)
}
