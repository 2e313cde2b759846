package summary

import "math"

// anomalyThreshold is the |z-score| above which a lap is flagged.
const anomalyThreshold = 2.5

// meanStdDev returns the mean and the sample (n-1) standard deviation of
// values. With fewer than two values, or zero variance, the standard
// deviation falls back to 1.0 so z-scores never divide by zero.
func meanStdDev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0.0, 1.0
	}

	n := float64(len(values))
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	mean := sum / n

	if len(values) < 2 {
		return mean, 1.0
	}

	varianceSum := 0.0
	for _, value := range values {
		varianceSum += (value - mean) * (value - mean)
	}
	variance := varianceSum / (n - 1)
	if variance <= 0 {
		return mean, 1.0
	}

	return mean, math.Sqrt(variance)
}

func isAnomaly(zScore float64) bool {
	return math.Abs(zScore) > anomalyThreshold
}
