// Package parse turns unstructured RAG answers into structured rotation
// data. All extractors are best-effort: ambiguous text yields a best
// guess, unparseable text yields a zero value for the caller to backfill.
package parse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/UmashankarGouda/KrishiChakra/pkg/crops"
	"github.com/UmashankarGouda/KrishiChakra/pkg/rotation/types"
)

// headingRX marks a markdown-style section boundary: 1-3 '#' then a space.
var headingRX = regexp.MustCompile(`^#{1,3}\s`)

// sectionWindow is how many lines after a keyword hit get concatenated.
const sectionWindow = 4

// ExtractSection finds the first line containing any of the keywords
// (case-insensitive) and concatenates it with up to the next 4 non-empty
// lines. A markdown heading ends the section early. Returns "" when no
// keyword line exists or the result trims to nothing. Only the first
// matching line is used; later occurrences are ignored.
func ExtractSection(text string, keywords []string) string {
	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		low := strings.ToLower(raw)
		matched := false
		for _, kw := range keywords {
			if strings.Contains(low, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		section := raw
		for j := i + 1; j < len(lines) && j <= i+sectionWindow; j++ {
			if headingRX.MatchString(lines[j]) {
				break
			}
			if t := strings.TrimSpace(lines[j]); t != "" {
				section += " " + t
			}
		}
		return strings.TrimSpace(section)
	}
	return ""
}

// listRule is one tagged pattern for recognizing a list item line. Rules
// are tried in order; the first match wins.
type listRule struct {
	tag   string
	rx    *regexp.Regexp
	strip *regexp.Regexp
}

var listRules = []listRule{
	{tag: "bullet", rx: regexp.MustCompile(`^[-*•]\s+`), strip: regexp.MustCompile(`^[-*•]\s+`)},
	{tag: "numbered", rx: regexp.MustCompile(`^\d+[.)]\s+`), strip: regexp.MustCompile(`^\d+[.)]\s+`)},
}

// ListOptions bounds list extraction.
type ListOptions struct {
	MaxItems int
	MinLen   int      // items at or under this length are noise
	Triggers []string // when set, collection starts only after a trigger keyword line
}

// ExtractList scans for bullet/numbered list items, strips markers, and
// filters fragments shorter than MinLen. When Triggers are set, items are
// collected only once a trigger keyword has appeared on a prior or
// current line, scoping collection to the relevant subsection. Returns
// nil when nothing was collected.
func ExtractList(text string, opts ListOptions) []string {
	if opts.MinLen <= 0 {
		opts.MinLen = 10
	}
	armed := len(opts.Triggers) == 0

	var items []string
	for _, raw := range strings.Split(text, "\n") {
		if !armed {
			low := strings.ToLower(raw)
			for _, t := range opts.Triggers {
				if strings.Contains(low, t) {
					armed = true
					break
				}
			}
		}
		if !armed {
			continue
		}
		line := strings.TrimSpace(raw)
		for _, rule := range listRules {
			if !rule.rx.MatchString(line) {
				continue
			}
			item := strings.TrimSpace(rule.strip.ReplaceAllString(line, ""))
			if len(item) > opts.MinLen {
				items = append(items, item)
			}
			break
		}
		if opts.MaxItems > 0 && len(items) >= opts.MaxItems {
			break
		}
	}
	return items
}

// ExtractBenefits collects up to 6 benefit list items from anywhere in
// the answer.
func ExtractBenefits(text string) []string {
	return ExtractList(text, ListOptions{MaxItems: 6, MinLen: 10})
}

// ExtractRecommendations collects up to 7 items, starting only after a
// recommendation trigger has been seen so unrelated bullet lists earlier
// in the answer are not pulled in.
func ExtractRecommendations(text string) []string {
	return ExtractList(text, ListOptions{
		MaxItems: 7,
		MinLen:   10,
		Triggers: []string{"recommend", "suggest", "should"},
	})
}

// matchedSoilBenefits backs assignments for crops found in the text.
// Which crop is extractable; why it helps the soil rarely is, so that
// part stays templated.
var matchedSoilBenefits = []string{
	"Improves soil nitrogen content",
	"Enhances soil organic matter",
	"Reduces soil-borne diseases",
	"Improves soil structure",
}

// defaultSoilBenefits backs the fixed fallback rotation.
var defaultSoilBenefits = []string{
	"Nitrogen fixation through legume rotation",
	"Improved soil health",
	"Pest cycle disruption",
	"Enhanced organic matter",
}

// ExtractRotation builds the year-by-year primary crop sequence: every
// lexicon crop mentioned in the text, in first-mention order, assigned
// cyclically across 1..years. With no mention it cycles the fixed
// default rotation instead. Always returns exactly `years` assignments.
func ExtractRotation(text string, years int, lex *crops.Lexicon) []types.YearCrop {
	if years < 1 {
		return nil
	}
	found := lex.Lookup(text)
	if len(found) > 0 {
		out := make([]types.YearCrop, 0, years)
		for i := 0; i < years; i++ {
			c := found[i%len(found)]
			out = append(out, types.YearCrop{
				Year:          i + 1,
				Season:        c.Season,
				Crop:          c.Name,
				Reason:        fmt.Sprintf("Selected for soil health improvement and economic viability in %s season", c.Season),
				ExpectedYield: c.Yield,
				SoilBenefits:  append([]string(nil), matchedSoilBenefits...),
			})
		}
		return out
	}

	def := crops.DefaultRotation()
	out := make([]types.YearCrop, 0, years)
	for i := 0; i < years; i++ {
		c := def[i%len(def)]
		out = append(out, types.YearCrop{
			Year:          i + 1,
			Season:        c.Season,
			Crop:          c.Name,
			Reason:        "Recommended based on soil type and climate zone",
			ExpectedYield: c.Yield,
			SoilBenefits:  append([]string(nil), defaultSoilBenefits...),
		})
	}
	return out
}
