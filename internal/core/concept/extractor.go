package concept

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Source tags recording which pass produced a candidate.
const (
	SourceLatexPattern = "latex_pattern"
	SourceLatexCommand = "latex_command"
	SourceKeyword      = "keyword_match"
	SourcePartial      = "partial_match"
	SourceContext      = "context_pattern"
)

// Candidate is a provisional concept with a confidence score and the set of
// passes that produced it.
type Candidate struct {
	Concept    string   `json:"concept"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources"`
}

// Result is the ranked outcome of one extraction.
type Result struct {
	Concepts   []string    `json:"concepts"`
	Detailed   []Candidate `json:"detailed"`
	Confidence float64     `json:"confidence"`
}

const (
	commandWeightFactor = 0.8
	partialWeightFactor = 0.7
	relatedBoost        = 0.1
	sourceBoost         = 0.1
	minConfidence       = 0.3
	countBonusStep      = 0.1
	countBonusCap       = 0.3
)

var latexCommandRe = regexp.MustCompile(`\\[a-zA-Z]+`)

// Extract runs the three passes over an OCR result, merges duplicates
// keeping the highest confidence, boosts by the relation graph and by
// multi-source agreement, and drops low-confidence candidates.
func Extract(latex, text string) Result {
	candidates := mergeCandidates(
		extractFromLatex(latex),
		extractFromText(text),
		extractFromContext(latex, text),
	)
	ranked := rank(candidates)

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Concept)
	}
	return Result{
		Concepts:   names,
		Detailed:   ranked,
		Confidence: overallConfidence(ranked),
	}
}

// extractFromLatex matches the full-pattern table first, then resolves bare
// \commands at reduced confidence for concepts not already found.
func extractFromLatex(latex string) []Candidate {
	var out []Candidate
	found := make(map[string]struct{})

	for _, r := range latexRules {
		if strings.Contains(latex, r.Pattern) {
			out = append(out, Candidate{Concept: r.Concept, Confidence: r.Weight, Sources: []string{SourceLatexPattern}})
			found[r.Concept] = struct{}{}
		}
	}

	for _, cmd := range latexCommandRe.FindAllString(latex, -1) {
		r, ok := latexRuleIndex[cmd]
		if !ok {
			continue
		}
		if _, done := found[r.Concept]; done {
			continue
		}
		out = append(out, Candidate{Concept: r.Concept, Confidence: r.Weight * commandWeightFactor, Sources: []string{SourceLatexCommand}})
		found[r.Concept] = struct{}{}
	}
	return out
}

// extractFromText runs an exact-phrase pass and then a token-level partial
// pass at reduced confidence for concepts the exact pass missed.
func extractFromText(text string) []Candidate {
	var out []Candidate
	lower := strings.ToLower(text)
	found := make(map[string]struct{})

	for _, r := range keywordRules {
		if strings.Contains(lower, strings.ToLower(r.Pattern)) {
			if _, done := found[r.Concept]; done {
				continue
			}
			out = append(out, Candidate{Concept: r.Concept, Confidence: r.Weight, Sources: []string{SourceKeyword}})
			found[r.Concept] = struct{}{}
		}
	}

	for _, word := range strings.Fields(lower) {
		for _, r := range keywordRules {
			kw := strings.ToLower(r.Pattern)
			if !strings.Contains(word, kw) && !strings.Contains(kw, word) {
				continue
			}
			if _, done := found[r.Concept]; done {
				continue
			}
			out = append(out, Candidate{Concept: r.Concept, Confidence: r.Weight * partialWeightFactor, Sources: []string{SourcePartial}})
			found[r.Concept] = struct{}{}
		}
	}
	return out
}

// extractFromContext searches the contextual phrase table over the combined
// latex and text.
func extractFromContext(latex, text string) []Candidate {
	var out []Candidate
	combined := strings.ToLower(latex + " " + text)

	for _, r := range contextRules {
		if strings.Contains(combined, strings.ToLower(r.Pattern)) {
			out = append(out, Candidate{Concept: r.Concept, Confidence: r.Weight, Sources: []string{SourceContext}})
		}
	}
	return out
}

// mergeCandidates deduplicates by concept name, keeping the maximum
// confidence and the set union of source tags. First-seen order is kept.
func mergeCandidates(lists ...[]Candidate) []Candidate {
	var order []string
	byName := make(map[string]*Candidate)

	for _, list := range lists {
		for _, c := range list {
			existing, ok := byName[c.Concept]
			if !ok {
				clone := c
				byName[c.Concept] = &clone
				order = append(order, c.Concept)
				continue
			}
			if c.Confidence > existing.Confidence {
				existing.Confidence = c.Confidence
			}
			for _, s := range c.Sources {
				if !containsString(existing.Sources, s) {
					existing.Sources = append(existing.Sources, s)
				}
			}
		}
	}

	out := make([]Candidate, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

// rank boosts each candidate by co-detected related concepts and by
// multi-source agreement, clamps to 1.0, sorts by confidence (stable, so
// equal scores keep first-seen order) and drops candidates below 0.3.
func rank(candidates []Candidate) []Candidate {
	detected := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		detected[c.Concept] = struct{}{}
	}

	boosted := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		confidence := c.Confidence

		relatedCount := 0
		for _, rel := range Related(c.Concept) {
			if _, ok := detected[rel]; ok {
				relatedCount++
			}
		}
		confidence += relatedBoost * float64(relatedCount)

		if len(c.Sources) > 1 {
			confidence += sourceBoost * float64(len(c.Sources)-1)
		}
		c.Confidence = math.Min(confidence, 1.0)
		boosted = append(boosted, c)
	}

	sort.SliceStable(boosted, func(i, j int) bool {
		return boosted[i].Confidence > boosted[j].Confidence
	})

	kept := boosted[:0]
	for _, c := range boosted {
		if c.Confidence >= minConfidence {
			kept = append(kept, c)
		}
	}
	return kept
}

// overallConfidence is the mean of the survivors plus a coverage bonus.
func overallConfidence(candidates []Candidate) float64 {
	if len(candidates) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range candidates {
		total += c.Confidence
	}
	mean := total / float64(len(candidates))
	bonus := math.Min(countBonusStep*float64(len(candidates)), countBonusCap)
	return math.Min(mean+bonus, 1.0)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
