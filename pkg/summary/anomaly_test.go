package summary

import (
	"math"
	"testing"
)

func TestMeanStdDev(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		wantMean   float64
		wantStdDev float64
	}{
		{"no laps", nil, 0.0, 1.0},
		{"single lap", []float64{97.5}, 97.5, 1.0},
		{"zero variance", []float64{100.0, 100.0, 100.0}, 100.0, 1.0},
		{"sample divisor", []float64{100.0, 101.0, 102.0, 130.0}, 108.25, math.Sqrt(632.75 / 3.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, stdDev := meanStdDev(tt.values)
			if math.Abs(mean-tt.wantMean) > 1e-9 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if math.Abs(stdDev-tt.wantStdDev) > 1e-9 {
				t.Errorf("stdDev = %v, want %v", stdDev, tt.wantStdDev)
			}
		})
	}
}

func TestIsAnomaly(t *testing.T) {
	tests := []struct {
		zScore float64
		want   bool
	}{
		{0.0, false},
		{2.5, false},
		{-2.5, false},
		{2.51, true},
		{-2.51, true},
		{10.0, true},
	}

	for _, tt := range tests {
		if got := isAnomaly(tt.zScore); got != tt.want {
			t.Errorf("isAnomaly(%v) = %v, want %v", tt.zScore, got, tt.want)
		}
	}
}

// A slow lap 21.75s off the mean of a short stint is within 1.5 standard
// deviations, so it must not be flagged.
func TestSlowLapBelowThreshold(t *testing.T) {
	values := []float64{100.0, 101.0, 102.0, 130.0}
	mean, stdDev := meanStdDev(values)

	zScore := (130.0 - mean) / stdDev
	if math.Abs(zScore-1.4976) > 1e-3 {
		t.Errorf("zScore = %v, want about 1.4976", zScore)
	}
	if isAnomaly(zScore) {
		t.Errorf("lap flagged as anomaly with zScore %v", zScore)
	}
}
