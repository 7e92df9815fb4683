package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// CosineSimilarity returns the cosine similarity between two embedding vectors.
//
// Both vectors must be non-empty, share a dimension, and be non-zero.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, errors.New("cosine similarity requires non-empty vectors")
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("cosine similarity requires vectors with equal dimensions, got %d and %d", len(a), len(b))
	}

	var dot, aNorm, bNorm float64
	for i, av := range a {
		bv := b[i]
		dot += av * bv
		aNorm += av * av
		bNorm += bv * bv
	}

	if aNorm == 0 || bNorm == 0 {
		return 0, errors.New("cosine similarity is undefined for zero vectors")
	}

	return dot / (math.Sqrt(aNorm) * math.Sqrt(bNorm)), nil
}

// SimilarityMatch is one candidate scored against a query embedding.
type SimilarityMatch struct {
	Index int
	Score float64
}

// RankBySimilarity scores every candidate against query and returns them from
// most to least similar. Ties keep candidate order.
func RankBySimilarity(query []float64, candidates [][]float64) ([]SimilarityMatch, error) {
	matches := make([]SimilarityMatch, 0, len(candidates))
	for i, candidate := range candidates {
		score, err := CosineSimilarity(query, candidate)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		matches = append(matches, SimilarityMatch{Index: i, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}
