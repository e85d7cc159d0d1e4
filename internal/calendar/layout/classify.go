package layout

import "strings"

// Category styles an event in the day detail view. Derived purely from the
// event title.
type Category string

const (
	CategoryMeeting    Category = "meeting"
	CategoryAssessment Category = "assessment"
	CategoryHalfDay    Category = "half-day"
	CategoryTraining   Category = "training"
	CategoryDefault    Category = "default"
)

// categoryRules is the ordered rule table; first match wins.
var categoryRules = []struct {
	substr string
	cat    Category
}{
	{"meeting", CategoryMeeting},
	{"assessment", CategoryAssessment},
	{"half day", CategoryHalfDay},
	{"training", CategoryTraining},
}

// Classify maps an event title to its category via case-insensitive
// substring match. Empty or unmatched titles get CategoryDefault.
func Classify(title string) Category {
	lower := strings.ToLower(title)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.substr) {
			return rule.cat
		}
	}
	return CategoryDefault
}

// Week grid event colors. A separate rule list from day-detail categories.
const (
	ColorIndigo = "#4f46e5"
	ColorPink   = "#ec4899"
	ColorOrange = "#f97316"
	ColorTeal   = "#14b8a6"
)

var colorRules = []struct {
	substrs []string
	color   string
}{
	{[]string{"meeting"}, ColorIndigo},
	{[]string{"assessment"}, ColorPink},
	{[]string{"proxy"}, ColorOrange},
	{[]string{"resume", "interview"}, ColorTeal},
}

// KeywordColor maps an event title to its week-grid accent color. First
// matching rule wins; the default is indigo.
func KeywordColor(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range colorRules {
		for _, s := range rule.substrs {
			if strings.Contains(lower, s) {
				return rule.color
			}
		}
	}
	return ColorIndigo
}
