// Package grading maps numeric scores onto the 4.0 grade-point scale.
package grading

// MinScore and MaxScore bound the valid score range (inclusive).
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// band is one step of the grade scale. Floor is an inclusive lower bound.
type band struct {
	Floor  float64
	Point  float64
	Letter string
}

// scale is ordered from the highest floor down.
var scale = []band{
	{Floor: 90, Point: 4.0, Letter: "A"},
	{Floor: 80, Point: 3.0, Letter: "B"},
	{Floor: 70, Point: 2.0, Letter: "C"},
	{Floor: 60, Point: 1.0, Letter: "D"},
}

// ScoreToPoint converts a score in [0, 100] to a grade point.
// Scores outside the range are not rejected; callers validate first.
func ScoreToPoint(score float64) float64 {
	for _, b := range scale {
		if score >= b.Floor {
			return b.Point
		}
	}
	return 0.0
}

// Letter returns the letter grade for a score, using the same bands as ScoreToPoint.
func Letter(score float64) string {
	for _, b := range scale {
		if score >= b.Floor {
			return b.Letter
		}
	}
	return "F"
}

// Average computes the unweighted mean grade point of the given scores.
// Every score carries equal weight. Returns 0.0 for an empty slice.
func Average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	total := 0.0
	for _, s := range scores {
		total += ScoreToPoint(s)
	}
	return total / float64(len(scores))
}
