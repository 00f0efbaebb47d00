package content

import "strings"

// TagAttr is the attribute a producer sets to tag a node explicitly.
const TagAttr = "data-plan-tag"

// VocabularyVersion identifies the tag vocabulary understood by Classify.
// Producers may prefix a tag value with it ("v1:workout-card").
const VocabularyVersion = "v1"

// Tag is the semantic role of a node in plan markup.
type Tag int

const (
	TagNone Tag = iota
	TagWorkoutCard
	TagCoachCue
	TagNutritionTable
	TagMindsetCard
	TagOverview
)

var tagNames = map[Tag]string{
	TagNone:           "",
	TagWorkoutCard:    "workout-card",
	TagCoachCue:       "coach-cue",
	TagNutritionTable: "nutrition-table",
	TagMindsetCard:    "mindset-card",
	TagOverview:       "overview",
}

// Tags returns the explicit tags in vocabulary order.
func Tags() []Tag {
	return []Tag{TagWorkoutCard, TagCoachCue, TagNutritionTable, TagMindsetCard, TagOverview}
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok && s != "" {
		return s
	}
	return "none"
}

// ParseTag resolves a data-plan-tag value. Unknown names and foreign
// vocabulary versions report ok=false.
func ParseTag(v string) (Tag, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if ver, name, ok := strings.Cut(v, ":"); ok {
		if ver != VocabularyVersion {
			return TagNone, false
		}
		v = name
	}
	for t, name := range tagNames {
		if t != TagNone && name == v {
			return t, true
		}
	}
	return TagNone, false
}

// legacySignatures are the inline-style conventions of the upstream generator,
// checked in order when a node carries no explicit tag.
var legacySignatures = []struct {
	tag Tag
	m   Matcher
}{
	{TagWorkoutCard, All(Element("div"), Declares("padding", "18px"))},
	{TagCoachCue, All(Element("div"), Declares("border-left", "4px solid"))},
	{TagMindsetCard, All(Element("div"), Declares("border-top", "5px solid #f59e0b"))},
	{TagOverview, All(Element("div"), Declares("background", "linear-gradient"))},
	{TagNutritionTable, Element("table")},
}

// Classify returns the tag of n. An explicit, recognised data-plan-tag wins;
// otherwise the legacy style signatures are consulted.
func Classify(n *Node) Tag {
	if n == nil || n.Element() == "" {
		return TagNone
	}
	if v := n.Attr(TagAttr); v != "" {
		if t, ok := ParseTag(v); ok {
			return t
		}
	}
	for _, sig := range legacySignatures {
		if sig.m.Match(n) {
			return sig.tag
		}
	}
	return TagNone
}

// Visitor receives classified nodes in document order.
type Visitor interface {
	WorkoutCard(n *Node)
	CoachCue(n *Node)
	NutritionTable(n *Node)
	MindsetCard(n *Node)
	Overview(n *Node)
}

// Walk classifies every element below root and dispatches tagged ones to v.
// Untagged nodes are skipped; traversal always continues into children.
func Walk(root *Node, v Visitor) {
	root.walk(func(n *Node) bool {
		switch Classify(n) {
		case TagWorkoutCard:
			v.WorkoutCard(n)
		case TagCoachCue:
			v.CoachCue(n)
		case TagNutritionTable:
			v.NutritionTable(n)
		case TagMindsetCard:
			v.MindsetCard(n)
		case TagOverview:
			v.Overview(n)
		}
		return true
	})
}
