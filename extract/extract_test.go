package extract

import (
	"os"
	"reflect"
	"testing"

	"github.com/lvillar/planpdf/content"
)

func parseFixture(t *testing.T) *content.Document {
	t.Helper()
	f, err := os.Open("../content/testdata/plan.html")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()
	doc, err := content.Parse(f)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func mustParse(t *testing.T, markup string) *content.Document {
	t.Helper()
	doc, err := content.ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return doc
}

func TestWorkouts(t *testing.T) {
	got := Workouts(parseFixture(t).Root())
	if len(got) != 2 {
		t.Fatalf("got %d workout entries, want 2", len(got))
	}

	first := got[0]
	if first.DisplayTitle() != "Day 1 – Push" {
		t.Errorf("title = %q", first.DisplayTitle())
	}
	wantDetails := []string{
		"• Warm-up: 5 min rowing",
		"• Main Workout: Bench press 4x8, overhead press 3x10",
	}
	if !reflect.DeepEqual(first.DetailLines, wantDetails) {
		t.Errorf("details = %q, want %q", first.DetailLines, wantDetails)
	}
	if cue, ok := first.CoachCue.Get(); !ok || cue != "Rest 60s between sets" {
		t.Errorf("cue = %q, %v", cue, ok)
	}

	if got[1].CoachCue.OK() {
		t.Errorf("icon-only cue should be absent, got %q", got[1].CoachCue.OrElse(""))
	}
}

func TestWorkoutsNoMatches(t *testing.T) {
	got := Workouts(mustParse(t, "<div><p>just text</p></div>").Root())
	if len(got) != 0 {
		t.Fatalf("got %d entries, want 0", len(got))
	}
}

func TestWorkoutTitleFallback(t *testing.T) {
	doc := mustParse(t, `<div style="padding:18px"><p>Squats</p></div>`)
	got := Workouts(doc.Root())
	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	if got[0].Title.OK() {
		t.Error("title should be absent")
	}
	if got[0].DisplayTitle() != DefaultWorkoutTitle {
		t.Errorf("DisplayTitle = %q", got[0].DisplayTitle())
	}
}

func TestWorkoutExplicitTags(t *testing.T) {
	doc := mustParse(t, `
		<article data-plan-tag="workout-card">
			<strong>Day 1 — Push</strong>
			<p>Bench press</p>
			<p>Dips</p>
			<aside><div data-plan-tag="coach-cue">💡 Rest 60s between sets</div></aside>
		</article>`)
	got := Workouts(doc.Root())
	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	if got[0].DisplayTitle() != "Day 1 — Push" {
		t.Errorf("title = %q", got[0].DisplayTitle())
	}
	if len(got[0].DetailLines) != 2 {
		t.Errorf("details = %q", got[0].DetailLines)
	}
	if cue := got[0].CoachCue.OrElse(""); cue != "Rest 60s between sets" {
		t.Errorf("cue = %q", cue)
	}
}

func TestNutrition(t *testing.T) {
	tbl := Nutrition(parseFixture(t).Root())
	if want := []string{"Day", "Breakfast", "Lunch"}; !reflect.DeepEqual(tbl.Headers, want) {
		t.Errorf("headers = %q, want %q", tbl.Headers, want)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	grid, adjusted := tbl.Grid()
	if adjusted != 1 {
		t.Errorf("adjusted = %d, want 1", adjusted)
	}
	if want := []string{"Tuesday", "Eggs", ""}; !reflect.DeepEqual(grid[1], want) {
		t.Errorf("padded row = %q, want %q", grid[1], want)
	}
}

func TestNutritionGridTruncatesLongRows(t *testing.T) {
	tbl := NutritionTable{
		Headers: []string{"Meal", "Protein"},
		Rows:    []NutritionRow{{Cells: []string{"Lunch", "40g", "extra"}}},
	}
	grid, adjusted := tbl.Grid()
	if adjusted != 1 || !reflect.DeepEqual(grid[0], []string{"Lunch", "40g"}) {
		t.Errorf("grid = %q (adjusted %d)", grid, adjusted)
	}
}

func TestNutritionMissing(t *testing.T) {
	tbl := Nutrition(mustParse(t, "<p>no table</p>").Root())
	if !tbl.Empty() {
		t.Errorf("expected empty table, got headers %q", tbl.Headers)
	}
}

func TestMindset(t *testing.T) {
	got := Mindset(parseFixture(t).Root())
	want := []struct{ day, quote string }{
		{"Monday", "Consistency builds confidence."},
		{"Tuesday", "Show up today."},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].DayText() != w.day || got[i].QuoteText() != w.quote {
			t.Errorf("entry %d = (%q, %q), want (%q, %q)",
				i, got[i].DayText(), got[i].QuoteText(), w.day, w.quote)
		}
	}
}

func TestMindsetFallbacks(t *testing.T) {
	doc := mustParse(t, `<div style="border-top:5px solid #f59e0b"><span>🎯</span></div>`)
	got := Mindset(doc.Root())
	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	if got[0].DayText() != DefaultMindsetDay {
		t.Errorf("day = %q", got[0].DayText())
	}
	if got[0].QuoteText() != DefaultQuote {
		t.Errorf("quote = %q", got[0].QuoteText())
	}
}

func TestOverview(t *testing.T) {
	ov, ok := OverviewOf(parseFixture(t).Root()).Get()
	if !ok {
		t.Fatal("overview not found")
	}
	if ov.PlanType.OrElse("") != "Muscle Gain Focus" {
		t.Errorf("plan type = %q", ov.PlanType.OrElse(""))
	}
	if ov.WeeklyFocus.OrElse("") != "Progressive overload with full recovery" {
		t.Errorf("weekly focus = %q", ov.WeeklyFocus.OrElse(""))
	}
}

func TestAllMatchesIndividualExtractors(t *testing.T) {
	doc := parseFixture(t)
	plan := All(doc)
	root := doc.Root()

	if !reflect.DeepEqual(plan.Workouts, Workouts(root)) {
		t.Error("All().Workouts differs from Workouts()")
	}
	if !reflect.DeepEqual(plan.Nutrition, Nutrition(root)) {
		t.Error("All().Nutrition differs from Nutrition()")
	}
	if !reflect.DeepEqual(plan.Mindset, Mindset(root)) {
		t.Error("All().Mindset differs from Mindset()")
	}
	if !reflect.DeepEqual(plan.Overview, OverviewOf(root)) {
		t.Error("All().Overview differs from OverviewOf()")
	}
}

func TestAllDoesNotMutateDocument(t *testing.T) {
	doc := parseFixture(t)
	before := doc.Text()
	All(doc)
	All(doc)
	if doc.Text() != before {
		t.Error("extraction changed the document text")
	}
}

func TestFieldOrElse(t *testing.T) {
	if got := Absent[string]().OrElse("x"); got != "x" {
		t.Errorf("Absent.OrElse = %q", got)
	}
	if got := Present("").OrElse("x"); got != "" {
		t.Errorf("Present(\"\").OrElse = %q", got)
	}
	if text("").OK() {
		t.Error("text(\"\") should be absent")
	}
}
