package service

import "math"

// CSATScore maps the mean of 1-5 ratings onto a 0-100 scale.
// ok is false when there are no ratings.
func CSATScore(ratings []int) (score float64, ok bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return round1((mean - 1) / 4 * 100), true
}

// NPSScore computes Net Promoter Score over 0-10 ratings: the share of
// promoters (9-10) minus the share of detractors (0-6), in -100..100.
func NPSScore(ratings []int) (score float64, ok bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	promoters, detractors := 0, 0
	for _, r := range ratings {
		switch {
		case r >= 9:
			promoters++
		case r <= 6:
			detractors++
		}
	}
	n := float64(len(ratings))
	return round1((float64(promoters) - float64(detractors)) / n * 100), true
}

// CompletionRate is responded deliveries over reached deliveries, 0..100.
func CompletionRate(responded, reached int64) float64 {
	if reached == 0 {
		return 0
	}
	return round1(float64(responded) / float64(reached) * 100)
}

// MeanRating averages raw rating values, ok false when empty.
func MeanRating(ratings []int) (float64, bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return round1(float64(sum) / float64(len(ratings))), true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
