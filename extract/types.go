// Package extract turns classified plan markup into typed records.
//
// Extraction never fails: missing sections produce empty results and missing
// fields are reported as absent, to be substituted with the defaults below.
package extract

// Defaults substituted for absent fields.
const (
	DefaultWorkoutTitle = "Workout Day"
	DefaultMindsetDay   = "Day"
	DefaultQuote        = ""

	// Bullet prefixes every workout detail line.
	Bullet = "• "
)

// WorkoutEntry is one workout card.
type WorkoutEntry struct {
	Title       Field[string]
	DetailLines []string // each already prefixed with Bullet
	CoachCue    Field[string]
}

// DisplayTitle returns the title, or DefaultWorkoutTitle.
func (e WorkoutEntry) DisplayTitle() string {
	return e.Title.OrElse(DefaultWorkoutTitle)
}

// NutritionRow is one body row of the nutrition table.
type NutritionRow struct {
	Cells []string
}

// NutritionTable is the first table found in the markup.
type NutritionTable struct {
	Headers []string
	Rows    []NutritionRow
}

// Empty reports whether no table was found; renderers skip the section then.
func (t NutritionTable) Empty() bool {
	return len(t.Headers) == 0
}

// Grid returns the body rows sized to the header count: short rows are padded
// with empty cells, long rows truncated. The second result counts rows that
// needed adjusting.
func (t NutritionTable) Grid() ([][]string, int) {
	n := len(t.Headers)
	grid := make([][]string, 0, len(t.Rows))
	adjusted := 0
	for _, r := range t.Rows {
		cells := make([]string, n)
		copy(cells, r.Cells)
		if len(r.Cells) != n {
			adjusted++
		}
		grid = append(grid, cells)
	}
	return grid, adjusted
}

// MindsetEntry is one daily mindset card.
type MindsetEntry struct {
	Day   Field[string]
	Quote Field[string]
}

// DayText returns the day label, or DefaultMindsetDay.
func (e MindsetEntry) DayText() string {
	return e.Day.OrElse(DefaultMindsetDay)
}

// QuoteText returns the quote without quotation marks, or DefaultQuote.
func (e MindsetEntry) QuoteText() string {
	return e.Quote.OrElse(DefaultQuote)
}

// Overview is the coach strategy banner at the top of a plan.
type Overview struct {
	PlanType    Field[string]
	WeeklyFocus Field[string]
}

// Plan bundles every record extracted from one document.
type Plan struct {
	Workouts  []WorkoutEntry
	Nutrition NutritionTable
	Mindset   []MindsetEntry
	Overview  Field[Overview]
}
