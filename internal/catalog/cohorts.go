// Package catalog holds the static program data: cohorts, their anchor
// schedules, and the built-in seed task templates.
package catalog

import "github.com/jaeyoonkim/gisu/internal/domain"

// Cohort is a named intake of the training program.
type Cohort struct {
	Key   string
	Label string
}

// Cohorts lists the known intakes in program order.
var Cohorts = []Cohort{
	{Key: "32", Label: "32기(1차)"},
	{Key: "33", Label: "33기(2차)"},
	{Key: "34", Label: "34기(3차)"},
	{Key: "35", Label: "35기(4차)"},
}

// Schedules maps each cohort to its anchor dates.
var Schedules = map[string]domain.Schedule{
	"32": {
		domain.AnchorPythonStart:  "2026-02-23",
		domain.AnchorBigdataStart: "2026-03-02",
		domain.AnchorAIStart:      "2026-03-30",
		domain.AnchorAIEnd:        "2026-05-01",
	},
	"33": {
		domain.AnchorPythonStart:  "2026-05-11",
		domain.AnchorBigdataStart: "2026-05-18",
		domain.AnchorAIStart:      "2026-06-15",
		domain.AnchorAIEnd:        "2026-07-17",
	},
	"34": {
		domain.AnchorPythonStart:  "2026-07-27",
		domain.AnchorBigdataStart: "2026-08-03",
		domain.AnchorAIStart:      "2026-08-31",
		domain.AnchorAIEnd:        "2026-10-02",
	},
	"35": {
		domain.AnchorPythonStart:  "2026-10-12",
		domain.AnchorBigdataStart: "2026-10-19",
		domain.AnchorAIStart:      "2026-11-16",
		domain.AnchorAIEnd:        "2026-12-18",
	},
}

// ScheduleFor returns the anchor schedule for a cohort, if one is registered.
func ScheduleFor(cohort string) (domain.Schedule, bool) {
	s, ok := Schedules[cohort]
	return s, ok
}

// Keys returns the cohort keys in program order.
func Keys() []string {
	keys := make([]string, 0, len(Cohorts))
	for _, c := range Cohorts {
		keys = append(keys, c.Key)
	}
	return keys
}

// LabelFor returns the display label for a cohort key, or the key itself
// when unknown.
func LabelFor(key string) string {
	for _, c := range Cohorts {
		if c.Key == key {
			return c.Label
		}
	}
	return key
}
