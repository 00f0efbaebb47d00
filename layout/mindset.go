package layout

import "github.com/lvillar/planpdf/extract"

// MindsetSection draws its title unconditionally, then one day/quote pair per
// entry. Unlike WorkoutSection it has no placeholder for an empty list.
type MindsetSection struct {
	Entries []extract.MindsetEntry
}

func (s MindsetSection) Render(f *Flow, c Cursor) (Cursor, error) {
	th := f.theme
	c = f.Reserve(c, 0, th.MindsetTitleThreshold)
	c = f.SectionTitle(c, th.MindsetTitle)

	day := th.body("B", th.Day)
	quote := th.body("I", th.Quote)
	for _, e := range s.Entries {
		c = f.Reserve(c, 0, th.QuoteThreshold)
		f.canvas.DrawText(e.DayText(), th.Margin, c.Y, day)
		n := f.Lines(c, `"`+e.QuoteText()+`"`, th.QuoteIndent, th.QuoteWidth, quote)
		c.Y += float64(n)*th.LineHeight + th.QuoteGap
	}
	return c, nil
}
