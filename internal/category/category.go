// Package category maps raw Open Trivia DB categories onto the coarser
// macro categories the store groups by.
package category

import (
	"log/slog"
	"strings"
)

// Macro category labels, trivial-pursuit style.
const (
	ArtAndLiterature = "Art and Literature"
	Entertainment    = "Entertainment"
	GeneralKnowledge = "General Knowledge"
	Geography        = "Geography"
	History          = "History"
	ScienceAndNature = "Science and Nature"
	SportsAndLeisure = "Sports and Leisure"
)

// macroByPrefix keys on the category prefix, i.e. everything before the
// first ":" ("Entertainment: Books" → "Entertainment").
var macroByPrefix = map[string]string{
	"Art":               ArtAndLiterature,
	"Animals":           ScienceAndNature,
	"History":           History,
	"Entertainment":     Entertainment,
	"Sports":            SportsAndLeisure,
	"Politics":          History,
	"Celebrities":       Entertainment,
	"Mythology":         History,
	"General Knowledge": GeneralKnowledge, // no macro equivalent, kept as is
	"Science & Nature":  ScienceAndNature,
	"Vehicles":          ScienceAndNature,
	"Geography":         Geography,
	"Science":           ScienceAndNature,
}

// Macro returns the macro category for a raw API category. Unknown
// categories warn and pass through verbatim (minus any subcategory
// suffix) so an API-side addition never blocks accumulation. A prefix
// that trims to nothing (inputs like "::") falls back to the raw input,
// keeping the mapping total for every non-empty string.
func Macro(raw string) string {
	prefix, _, _ := strings.Cut(raw, ":")
	prefix = strings.TrimSpace(prefix)
	if macro, ok := macroByPrefix[prefix]; ok {
		return macro
	}
	if prefix == "" {
		if prefix = strings.TrimSpace(raw); prefix == "" {
			prefix = raw
		}
	}
	slog.Warn("unmapped category", "category", prefix)
	return prefix
}
