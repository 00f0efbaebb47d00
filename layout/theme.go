package layout

// Theme holds the page geometry, colors and copy used by the composer.
// Lengths are in the canvas unit (millimetres for the PDF surface).
type Theme struct {
	Margin       float64 `yaml:"margin"`
	Top          float64 `yaml:"top"`
	TitleY       float64 `yaml:"title_y"`
	StatsBoxY    float64 `yaml:"stats_box_y"`
	StatsBoxH    float64 `yaml:"stats_box_height"`
	StatsTextY   float64 `yaml:"stats_text_y"`
	StrategyY    float64 `yaml:"strategy_y"`
	StartY       float64 `yaml:"start_y"`
	LineHeight   float64 `yaml:"line_height"`
	FooterOffset float64 `yaml:"footer_offset"`

	DetailIndent float64 `yaml:"detail_indent"`
	DetailWidth  float64 `yaml:"detail_width"`
	QuoteIndent  float64 `yaml:"quote_indent"`
	QuoteWidth   float64 `yaml:"quote_width"`

	// Soft overflow thresholds: a block starting below one of these Y values
	// moves to a new page first.
	CardThreshold         float64 `yaml:"card_threshold"`
	TableThreshold        float64 `yaml:"table_threshold"`
	MindsetTitleThreshold float64 `yaml:"mindset_title_threshold"`
	QuoteThreshold        float64 `yaml:"quote_threshold"`

	SectionTitleAdvance float64 `yaml:"section_title_advance"`
	TitleGap            float64 `yaml:"title_gap"`
	DetailGap           float64 `yaml:"detail_gap"`
	CardGap             float64 `yaml:"card_gap"`
	SectionGap          float64 `yaml:"section_gap"`
	PlaceholderAdvance  float64 `yaml:"placeholder_advance"`
	TableGap            float64 `yaml:"table_gap"`
	QuoteGap            float64 `yaml:"quote_gap"`

	TitleSize   float64 `yaml:"title_size"`
	SectionSize float64 `yaml:"section_size"`
	BodySize    float64 `yaml:"body_size"`
	TableSize   float64 `yaml:"table_size"`
	FooterSize  float64 `yaml:"footer_size"`
	CellPadding float64 `yaml:"cell_padding"`
	DayColumn   float64 `yaml:"day_column_width"`

	Accent     RGB `yaml:"accent"`
	AccentTint RGB `yaml:"accent_tint"`
	Ink        RGB `yaml:"ink"`
	Body       RGB `yaml:"body"`
	Cue        RGB `yaml:"cue"`
	Day        RGB `yaml:"day"`
	Quote      RGB `yaml:"quote"`
	Muted      RGB `yaml:"muted"`
	Zebra      RGB `yaml:"zebra"`
	Grid       RGB `yaml:"grid"`
	Light      RGB `yaml:"light"`

	WorkoutTitle   string `yaml:"workout_title"`
	NutritionTitle string `yaml:"nutrition_title"`
	MindsetTitle   string `yaml:"mindset_title"`
	NoWorkouts     string `yaml:"no_workouts"`
	CuePrefix      string `yaml:"cue_prefix"`
	// FooterFormat supports the {page}, {pages} and {product} placeholders.
	FooterFormat string `yaml:"footer_format"`
}

// DefaultFooterFormat is the footer stamped on every page.
const DefaultFooterFormat = "Page {page} of {pages} — generated by {product}"

// DefaultTheme returns the A4 layout of the downloadable fitness plan.
func DefaultTheme() Theme {
	return Theme{
		Margin:       14,
		Top:          20,
		TitleY:       20,
		StatsBoxY:    30,
		StatsBoxH:    12,
		StatsTextY:   37,
		StrategyY:    49,
		StartY:       55,
		LineHeight:   5,
		FooterOffset: 7,

		DetailIndent: 18,
		DetailWidth:  170,
		QuoteIndent:  40,
		QuoteWidth:   140,

		CardThreshold:         250,
		TableThreshold:        220,
		MindsetTitleThreshold: 250,
		QuoteThreshold:        270,

		SectionTitleAdvance: 10,
		TitleGap:            6,
		DetailGap:           2,
		CardGap:             8,
		SectionGap:          5,
		PlaceholderAdvance:  10,
		TableGap:            15,
		QuoteGap:            6,

		TitleSize:   22,
		SectionSize: 16,
		BodySize:    10,
		TableSize:   8,
		FooterSize:  8,
		CellPadding: 4,
		DayColumn:   28,

		Accent:     RGB{79, 70, 229},
		AccentTint: RGB{238, 242, 255},
		Ink:        RGB{0, 0, 0},
		Body:       RGB{60, 60, 60},
		Cue:        RGB{16, 185, 129},
		Day:        RGB{180, 83, 9},
		Quote:      RGB{50, 50, 50},
		Muted:      RGB{150, 150, 150},
		Zebra:      RGB{249, 250, 251},
		Grid:       RGB{200, 200, 200},
		Light:      RGB{255, 255, 255},

		WorkoutTitle:   "Weekly Workout Protocol",
		NutritionTitle: "Nutrition Strategy",
		MindsetTitle:   "Daily Mindset & Habits",
		NoWorkouts:     "No workout data found.",
		CuePrefix:      "Coach Cue: ",
		FooterFormat:   DefaultFooterFormat,
	}
}

func (th Theme) sectionTitle() TextStyle {
	return TextStyle{Style: "B", Size: th.SectionSize, Color: th.Accent}
}

func (th Theme) body(style string, color RGB) TextStyle {
	return TextStyle{Style: style, Size: th.BodySize, Color: color}
}
