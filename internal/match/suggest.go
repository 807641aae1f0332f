package match

import "sort"

// Candidate is a known key scored against an unrecognized one.
type Candidate struct {
	Key      string
	Distance int
	Score    float64
}

// Suggest returns the known keys within maxDistance edits of key, closest
// first. Keys are compared in NormalizeIdent form so separator differences
// cost nothing. Exact matches are never suggested, and maxDistance <= 0
// disables suggestions.
func Suggest(key string, known []string, maxDistance int) []string {
	candidates := Rank(key, known, maxDistance)

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Key)
	}

	return out
}

// Rank is Suggest with the scoring details kept.
func Rank(key string, known []string, maxDistance int) []Candidate {
	if maxDistance <= 0 {
		return nil
	}

	// Keys shorter than three runes are too ambiguous to guess at.
	norm := NormalizeIdent(key)
	if len([]rune(norm)) < 3 {
		return nil
	}

	seen := make(map[string]struct{}, len(known))

	var candidates []Candidate

	for _, k := range known {
		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}

		kn := NormalizeIdent(k)
		if kn == norm {
			continue
		}

		dist := Levenshtein(norm, kn)
		if dist > maxDistance {
			continue
		}

		if dist >= len([]rune(kn)) {
			continue
		}

		candidates = append(candidates, Candidate{
			Key:      k,
			Distance: dist,
			Score:    LevenshteinNormalized(norm, kn),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}

		return candidates[i].Key < candidates[j].Key
	})

	return candidates
}
