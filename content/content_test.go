package content

import (
	"os"
	"strings"
	"testing"
)

func loadPlan(t *testing.T) *Document {
	t.Helper()
	f, err := os.Open("testdata/plan.html")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()
	doc, err := Parse(f)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestParseStyle(t *testing.T) {
	st := ParseStyle("border:1px solid #e5e7eb;\n  PADDING : 18px ;border-top:5px   solid #F59E0B;broken")
	if !st.Has("padding", "18px") {
		t.Errorf("padding not found in %v", st)
	}
	if !st.Has("border-top", "5px solid #f59e0b") {
		t.Errorf("border-top not normalized: %q", st["border-top"])
	}
	if st.Has("border-left", "") {
		t.Error("undeclared property reported present")
	}
	if _, ok := st["broken"]; ok {
		t.Error("declaration without colon should be ignored")
	}
}

func TestClassifyLegacySignatures(t *testing.T) {
	doc := loadPlan(t)
	counts := map[Tag]int{}
	doc.Root().walk(func(n *Node) bool {
		counts[Classify(n)]++
		return true
	})

	want := map[Tag]int{
		TagWorkoutCard:    2,
		TagCoachCue:       2,
		TagNutritionTable: 1,
		TagMindsetCard:    2,
		TagOverview:       1,
	}
	for tag, n := range want {
		if counts[tag] != n {
			t.Errorf("%s: got %d nodes, want %d", tag, counts[tag], n)
		}
	}
}

func TestClassifyExplicitTag(t *testing.T) {
	doc, err := ParseString(`
		<section data-plan-tag="workout-card"><strong>A</strong></section>
		<div data-plan-tag="v1:mindset-card"><strong>B</strong></div>
		<div data-plan-tag="v9:mindset-card" style="padding:18px">C</div>
		<div data-plan-tag="bogus">D</div>`)
	if err != nil {
		t.Fatal(err)
	}
	var tags []Tag
	for _, n := range doc.Root().FindAll(Element("section", "div")) {
		tags = append(tags, n.Tag())
	}
	want := []Tag{TagWorkoutCard, TagMindsetCard, TagWorkoutCard, TagNone}
	if len(tags) != len(want) {
		t.Fatalf("got %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("node %d: got %s, want %s", i, tags[i], want[i])
		}
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
		ok   bool
	}{
		{"coach-cue", TagCoachCue, true},
		{" Nutrition-Table ", TagNutritionTable, true},
		{"v1:overview", TagOverview, true},
		{"v2:overview", TagNone, false},
		{"", TagNone, false},
		{"none", TagNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseTag(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseTag(%q) = %s, %v; want %s, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTagsRoundTrip(t *testing.T) {
	for _, tag := range Tags() {
		got, ok := ParseTag(tag.String())
		if !ok || got != tag {
			t.Errorf("ParseTag(%q) = %s, %v", tag, got, ok)
		}
	}
}

func TestNodeText(t *testing.T) {
	doc, err := ParseString("<p>  <b>Main:</b>\n   squat   5x5 <br> then   rest </p>")
	if err != nil {
		t.Fatal(err)
	}
	p := doc.Root().First(Element("p"))
	if p == nil {
		t.Fatal("paragraph not found")
	}
	if got, want := p.Text(), "Main: squat 5x5\nthen rest"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestSanitizeDropsScripts(t *testing.T) {
	doc := loadPlan(t)
	if strings.Contains(doc.Text(), "alert") {
		t.Error("script content survived sanitizing")
	}
	if doc.Root().First(Element("script")) != nil {
		t.Error("script element survived sanitizing")
	}
}

func TestChildrenAndFirst(t *testing.T) {
	doc, err := ParseString(`<div id="a"><p>one</p><span><p>nested</p></span><p>two</p></div>`)
	if err != nil {
		t.Fatal(err)
	}
	div := doc.Root().First(Element("div"))
	if got := len(div.Children(Element("p"))); got != 2 {
		t.Errorf("direct <p> children = %d, want 2", got)
	}
	if got := len(div.FindAll(Element("p"))); got != 3 {
		t.Errorf("descendant <p> = %d, want 3", got)
	}
	if got := div.First(Element("p")).Text(); got != "one" {
		t.Errorf("First(p) = %q", got)
	}
	if div.First(Element("table")) != nil {
		t.Error("First returned a node for a missing element")
	}
}

type countingVisitor struct{ seen []Tag }

func (v *countingVisitor) WorkoutCard(*Node)    { v.seen = append(v.seen, TagWorkoutCard) }
func (v *countingVisitor) CoachCue(*Node)       { v.seen = append(v.seen, TagCoachCue) }
func (v *countingVisitor) NutritionTable(*Node) { v.seen = append(v.seen, TagNutritionTable) }
func (v *countingVisitor) MindsetCard(*Node)    { v.seen = append(v.seen, TagMindsetCard) }
func (v *countingVisitor) Overview(*Node)       { v.seen = append(v.seen, TagOverview) }

func TestWalkDocumentOrder(t *testing.T) {
	doc := loadPlan(t)
	var v countingVisitor
	Walk(doc.Root(), &v)
	want := []Tag{
		TagOverview,
		TagWorkoutCard, TagCoachCue,
		TagWorkoutCard, TagCoachCue,
		TagNutritionTable,
		TagMindsetCard, TagMindsetCard,
	}
	if len(v.seen) != len(want) {
		t.Fatalf("visited %v, want %v", v.seen, want)
	}
	for i := range want {
		if v.seen[i] != want[i] {
			t.Errorf("visit %d: got %s, want %s", i, v.seen[i], want[i])
		}
	}
}
