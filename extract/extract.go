package extract

import (
	"strings"

	"github.com/lvillar/planpdf/content"
)

var (
	cueIcon     = strings.NewReplacer("💡", "", "\uFE0F", "")
	dayIcon     = strings.NewReplacer("🎯", "", "\uFE0F", "")
	quoteMarks  = strings.NewReplacer(`"`, "", "“", "", "”", "")
	strong      = content.Element("strong")
	paragraph   = content.Element("p")
	headerCell  = content.Element("th")
	bodyCell    = content.Element("td")
	tableBody   = content.Element("tbody")
	tableRow    = content.Element("tr")
	bannerTitle = content.Element("h1", "h2", "h3")
)

// All extracts every section of doc in a single pass.
func All(doc *content.Document) Plan {
	var c collector
	if root := doc.Root(); root != nil {
		content.Walk(root, &c)
	}
	return c.plan
}

// Workouts returns the workout cards below root in document order.
func Workouts(root *content.Node) []WorkoutEntry {
	var out []WorkoutEntry
	for _, n := range root.FindAll(content.Tagged(content.TagWorkoutCard)) {
		out = append(out, workoutEntry(n))
	}
	return out
}

// Nutrition returns the first nutrition table below root. Headers are empty
// when no table exists.
func Nutrition(root *content.Node) NutritionTable {
	n := root.First(content.Tagged(content.TagNutritionTable))
	if n == nil {
		return NutritionTable{}
	}
	return nutritionTable(n)
}

// Mindset returns the mindset cards below root in document order.
func Mindset(root *content.Node) []MindsetEntry {
	var out []MindsetEntry
	for _, n := range root.FindAll(content.Tagged(content.TagMindsetCard)) {
		out = append(out, mindsetEntry(n))
	}
	return out
}

// OverviewOf returns the first overview banner below root.
func OverviewOf(root *content.Node) Field[Overview] {
	n := root.First(content.Tagged(content.TagOverview))
	if n == nil {
		return Absent[Overview]()
	}
	return Present(overview(n))
}

type collector struct {
	plan      Plan
	haveTable bool
}

func (c *collector) WorkoutCard(n *content.Node) {
	c.plan.Workouts = append(c.plan.Workouts, workoutEntry(n))
}

// CoachCue nodes are read from within their workout card.
func (c *collector) CoachCue(*content.Node) {}

func (c *collector) NutritionTable(n *content.Node) {
	if c.haveTable {
		return
	}
	c.haveTable = true
	c.plan.Nutrition = nutritionTable(n)
}

func (c *collector) MindsetCard(n *content.Node) {
	c.plan.Mindset = append(c.plan.Mindset, mindsetEntry(n))
}

func (c *collector) Overview(n *content.Node) {
	if c.plan.Overview.OK() {
		return
	}
	c.plan.Overview = Present(overview(n))
}

func workoutEntry(card *content.Node) WorkoutEntry {
	var e WorkoutEntry
	if t := card.First(strong); t != nil {
		e.Title = text(t.Text())
	}
	for _, p := range card.FindAll(paragraph) {
		line := strings.ReplaceAll(p.Text(), "\n", " ")
		if line == "" {
			continue
		}
		e.DetailLines = append(e.DetailLines, Bullet+line)
	}
	if cue := card.First(content.Tagged(content.TagCoachCue)); cue != nil {
		e.CoachCue = text(strings.TrimSpace(cueIcon.Replace(cue.Text())))
	}
	return e
}

func nutritionTable(tbl *content.Node) NutritionTable {
	var t NutritionTable
	for _, th := range tbl.FindAll(headerCell) {
		t.Headers = append(t.Headers, th.Text())
	}
	for _, body := range tbl.FindAll(tableBody) {
		for _, tr := range body.Children(tableRow) {
			tds := tr.Children(bodyCell)
			if len(tds) == 0 {
				continue
			}
			row := NutritionRow{Cells: make([]string, len(tds))}
			for i, td := range tds {
				row.Cells[i] = td.Text()
			}
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}

func mindsetEntry(card *content.Node) MindsetEntry {
	var e MindsetEntry
	if d := card.First(strong); d != nil {
		e.Day = text(strings.TrimSpace(dayIcon.Replace(d.Text())))
	}
	if p := card.First(paragraph); p != nil {
		e.Quote = text(strings.TrimSpace(quoteMarks.Replace(p.Text())))
	}
	return e
}

func overview(banner *content.Node) Overview {
	var o Overview
	if h := banner.First(bannerTitle); h != nil {
		o.PlanType = text(h.Text())
	}
	if p := banner.First(paragraph); p != nil {
		o.WeeklyFocus = text(strings.TrimSpace(quoteMarks.Replace(p.Text())))
	}
	return o
}
