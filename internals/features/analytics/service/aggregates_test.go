package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSATScore(t *testing.T) {
	_, ok := CSATScore(nil)
	assert.False(t, ok)

	// All top marks map to 100, all bottom marks to 0.
	score, ok := CSATScore([]int{5, 5, 5})
	assert.True(t, ok)
	assert.Equal(t, 100.0, score)

	score, _ = CSATScore([]int{1, 1})
	assert.Equal(t, 0.0, score)

	// Mean 3 on 1..5 sits at the midpoint.
	score, _ = CSATScore([]int{1, 3, 5})
	assert.Equal(t, 50.0, score)

	score, _ = CSATScore([]int{4, 4, 4, 4})
	assert.Equal(t, 75.0, score)
}

func TestNPSScore(t *testing.T) {
	_, ok := NPSScore(nil)
	assert.False(t, ok)

	// All promoters.
	score, ok := NPSScore([]int{9, 10, 10})
	assert.True(t, ok)
	assert.Equal(t, 100.0, score)

	// All detractors.
	score, _ = NPSScore([]int{0, 3, 6})
	assert.Equal(t, -100.0, score)

	// Passives (7-8) count toward the denominator only.
	score, _ = NPSScore([]int{10, 7, 8, 0})
	assert.Equal(t, 0.0, score)

	// 2 promoters, 1 detractor, 1 passive: (2-1)/4 = 25.
	score, _ = NPSScore([]int{9, 10, 5, 8})
	assert.Equal(t, 25.0, score)
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0.0, CompletionRate(0, 0))
	assert.Equal(t, 0.0, CompletionRate(5, 0))
	assert.Equal(t, 50.0, CompletionRate(5, 10))
	assert.Equal(t, 100.0, CompletionRate(10, 10))
	assert.Equal(t, 33.3, CompletionRate(1, 3))
}

func TestMeanRating(t *testing.T) {
	_, ok := MeanRating(nil)
	assert.False(t, ok)

	mean, ok := MeanRating([]int{1, 2, 3, 4, 5})
	assert.True(t, ok)
	assert.Equal(t, 3.0, mean)

	mean, _ = MeanRating([]int{4, 5})
	assert.Equal(t, 4.5, mean)
}
