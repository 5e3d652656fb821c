package grading

import (
	"math"
	"testing"
)

func TestScoreToPoint(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{name: "perfect score", score: 100, want: 4.0},
		{name: "A lower bound", score: 90, want: 4.0},
		{name: "just below A", score: 89.999, want: 3.0},
		{name: "B lower bound", score: 80, want: 3.0},
		{name: "C lower bound", score: 70, want: 2.0},
		{name: "just below C", score: 69.5, want: 1.0},
		{name: "D lower bound", score: 60, want: 1.0},
		{name: "just below D", score: 59.999, want: 0.0},
		{name: "zero", score: 0, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreToPoint(tt.score); got != tt.want {
				t.Errorf("ScoreToPoint(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestScoreToPointMonotonic(t *testing.T) {
	prev := ScoreToPoint(MinScore)
	for s := MinScore; s <= MaxScore; s += 0.25 {
		got := ScoreToPoint(s)
		if got < prev {
			t.Fatalf("ScoreToPoint decreased at %v: %v < %v", s, got, prev)
		}
		prev = got
	}
}

func TestLetter(t *testing.T) {
	cases := map[float64]string{
		95:     "A",
		90:     "A",
		85:     "B",
		72:     "C",
		60:     "D",
		59.999: "F",
		0:      "F",
	}
	for score, want := range cases {
		if got := Letter(score); got != want {
			t.Errorf("Letter(%v) = %q, want %q", score, got, want)
		}
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{name: "no scores", scores: nil, want: 0.0},
		{name: "single A", scores: []float64{92}, want: 4.0},
		{name: "A and C", scores: []float64{92, 71}, want: 3.0},
		{name: "mixed bands", scores: []float64{100, 85, 65}, want: (4.0 + 3.0 + 1.0) / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.scores); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Average(%v) = %v, want %v", tt.scores, got, tt.want)
			}
		})
	}
}
