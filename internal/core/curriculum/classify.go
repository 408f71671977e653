package curriculum

import "strings"

// Analysis is the best-scoring curriculum placement for a concept list.
// Grade, Subject and Unit are empty when nothing matched.
type Analysis struct {
	Grade       string   `json:"grade"`
	Subject     string   `json:"subject"`
	Unit        string   `json:"unit"`
	SubConcepts []string `json:"subConcepts"`
	Confidence  float64  `json:"confidence"`
}

// Classify maps extracted concepts to the best matching (grade, subject,
// unit) leaf. For each unit it collects the sub-concepts and unit keywords
// that overlap any input concept as a substring in either direction, then
// scores the unit as |matches| / |input concepts|. The highest score wins;
// on equal scores the first unit in table declaration order is kept.
func Classify(concepts []string) Analysis {
	var analysis Analysis

	if len(concepts) == 0 {
		return analysis
	}

	normalized := make([]string, len(concepts))
	for i, c := range concepts {
		normalized[i] = strings.ToLower(c)
	}

	for _, grade := range table {
		for _, subject := range grade.Subjects {
			for _, u := range subject.Units {
				matches := matchUnit(normalized, u)
				if len(matches) == 0 {
					continue
				}
				confidence := float64(len(matches)) / float64(len(concepts))
				if confidence > analysis.Confidence {
					analysis = Analysis{
						Grade:       grade.Name,
						Subject:     subject.Name,
						Unit:        u.Name,
						SubConcepts: matches,
						Confidence:  confidence,
					}
				}
			}
		}
	}

	return analysis
}

// matchUnit returns the deduplicated terms of a unit (sub-concepts and
// keywords) that overlap any of the normalized input concepts.
func matchUnit(concepts []string, u Unit) []string {
	var matches []string
	seen := make(map[string]struct{})

	add := func(term string) {
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		matches = append(matches, term)
	}

	for _, sub := range u.SubConcepts {
		if overlapsAny(concepts, strings.ToLower(sub)) {
			add(sub)
		}
	}
	for _, kw := range keywordsFor(u) {
		if overlapsAny(concepts, strings.ToLower(kw)) {
			add(kw)
		}
	}
	return matches
}

func overlapsAny(concepts []string, term string) bool {
	for _, c := range concepts {
		if c == "" {
			continue
		}
		if strings.Contains(c, term) || strings.Contains(term, c) {
			return true
		}
	}
	return false
}
