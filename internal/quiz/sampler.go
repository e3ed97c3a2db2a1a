package quiz

import (
	"math/rand/v2"

	"coursekit/internal/domain"
)

// SampleChoices picks n distinct choices from pool: the correct answer plus
// n-1 distractors drawn uniformly without replacement. The result keeps the
// pool's relative order; the returned index is the 0-based position of the
// correct answer in the result. Duplicate pool entries count once.
func SampleChoices(pool []string, correct string, n int, rng *rand.Rand) ([]string, int, error) {
	unique := dedupe(pool)
	if n < 1 || n > len(unique) {
		return nil, 0, domain.NewInsufficientAnswerPoolError(n, len(unique))
	}
	correctPos := -1
	for i, item := range unique {
		if item == correct {
			correctPos = i
			break
		}
	}
	if correctPos < 0 {
		return nil, 0, domain.NewUnmatchedCategoryError("answer pool", correct)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	others := make([]int, 0, len(unique)-1)
	for i := range unique {
		if i != correctPos {
			others = append(others, i)
		}
	}
	// Partial Fisher-Yates: the first n-1 entries become the distractors.
	for i := 0; i < n-1; i++ {
		j := i + rng.IntN(len(others)-i)
		others[i], others[j] = others[j], others[i]
	}
	chosen := make(map[int]struct{}, n)
	chosen[correctPos] = struct{}{}
	for _, idx := range others[:n-1] {
		chosen[idx] = struct{}{}
	}

	result := make([]string, 0, n)
	index := 0
	for i, item := range unique {
		if _, ok := chosen[i]; !ok {
			continue
		}
		if i == correctPos {
			index = len(result)
		}
		result = append(result, item)
	}
	return result, index, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
