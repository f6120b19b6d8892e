// Package criteria decodes the passing_criteria column, which holds two
// generations of data side by side: a structured JSON document
// {"items":[{"category":...,"details":[...]}]} and a legacy newline-delimited
// text blob ("필기시험: ...\n실기시험: ..."). Rows are never migrated, so both
// forms must stay readable forever.
package criteria

import (
	"encoding/json"
	"strings"
)

type Item struct {
	Category string   `json:"category"`
	Details  []string `json:"details"`
}

type document struct {
	Items []Item `json:"items"`
}

// Legacy line prefixes recognised by the scanner.
var legacyPrefixes = []string{"필기시험:", "실기시험:"}

// Criteria is the decoded value. Raw always carries the stored string
// unchanged; Items is nil only when neither decoder matched (verbatim tier).
type Criteria struct {
	Raw        string `json:"raw"`
	Structured bool   `json:"structured"` // true when decoded from JSON
	Items      []Item `json:"items,omitempty"`
}

// Decode applies the three-tier fallback: JSON parse, then legacy
// line-prefix scan, then verbatim. The order must not change - previously
// stored rows depend on it.
func Decode(raw string) Criteria {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Criteria{Raw: raw}
	}

	// Tier 1: structured JSON (a "{" prefix signals this form)
	if strings.HasPrefix(trimmed, "{") {
		var doc document
		if err := json.Unmarshal([]byte(trimmed), &doc); err == nil && doc.Items != nil {
			return Criteria{Raw: raw, Structured: true, Items: doc.Items}
		}
	}

	// Tier 2: legacy newline-delimited text with known category prefixes
	if items := scanLegacy(trimmed); len(items) > 0 {
		return Criteria{Raw: raw, Items: items}
	}

	// Tier 3: verbatim display
	return Criteria{Raw: raw}
}

// scanLegacy turns "필기시험: 60점 이상" lines into items, grouping repeated
// categories in order of first appearance. Lines without a known prefix are
// ignored, matching how old rows were rendered.
func scanLegacy(text string) []Item {
	var items []Item
	index := map[string]int{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, prefix := range legacyPrefixes {
			if !strings.HasPrefix(line, prefix) {
				continue
			}
			category := strings.TrimSuffix(prefix, ":")
			detail := strings.TrimSpace(strings.TrimPrefix(line, prefix))

			i, seen := index[category]
			if !seen {
				items = append(items, Item{Category: category})
				i = len(items) - 1
				index[category] = i
			}
			if detail != "" {
				items[i].Details = append(items[i].Details, detail)
			}
			break
		}
	}
	return items
}

// EncodeStructured renders items as the structured JSON form. Write paths
// never normalise what a caller submitted; this exists for callers that
// build the structured form themselves.
func EncodeStructured(items []Item) (string, error) {
	buf, err := json.Marshal(document{Items: items})
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
