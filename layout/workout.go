package layout

import "github.com/lvillar/planpdf/extract"

// WorkoutSection draws the workout cards, or a single placeholder line when
// there are none.
type WorkoutSection struct {
	Entries []extract.WorkoutEntry
}

func (s WorkoutSection) Render(f *Flow, c Cursor) (Cursor, error) {
	th := f.theme
	c = f.SectionTitle(c, th.WorkoutTitle)

	if len(s.Entries) == 0 {
		f.canvas.DrawText(th.NoWorkouts, th.Margin, c.Y, th.body("", th.Body))
		c.Y += th.PlaceholderAdvance + th.SectionGap
		return c, nil
	}

	title := th.body("B", th.Ink)
	detail := th.body("", th.Body)
	cue := th.body("I", th.Cue)
	for _, e := range s.Entries {
		c = f.Reserve(c, 0, th.CardThreshold)

		f.canvas.DrawText(e.DisplayTitle(), th.Margin, c.Y, title)
		c.Y += th.TitleGap

		var lines []string
		for _, d := range e.DetailLines {
			lines = append(lines, f.canvas.Wrap(d, th.DetailWidth, detail)...)
		}
		f.drawLines(lines, th.DetailIndent, c.Y, detail)
		c.Y += float64(len(lines))*th.LineHeight + th.DetailGap

		if text, ok := e.CoachCue.Get(); ok {
			n := f.Lines(c, th.CuePrefix+text, th.DetailIndent, th.DetailWidth, cue)
			c.Y += float64(n) * th.LineHeight
		}
		c.Y += th.CardGap
	}
	c.Y += th.SectionGap
	return c, nil
}
