package photo

// Metrics is the derived completion summary shown to the installer.
type Metrics struct {
	Completed       int
	Needed          int
	CompletionRate  float64
	QualityStars    int
	ReadyToComplete bool
}

func NewMetrics(completed, needed int, ready bool) Metrics {
	rate := CompletionRate(completed, needed)
	return Metrics{
		Completed:       completed,
		Needed:          needed,
		CompletionRate:  rate,
		QualityStars:    QualityStars(rate),
		ReadyToComplete: ready,
	}
}

// CompletionRate is captured/required as a percentage. A job that requires
// nothing is complete.
func CompletionRate(captured, required int) float64 {
	if required <= 0 {
		return 100
	}
	if captured > required {
		captured = required
	}
	return float64(captured) / float64(required) * 100
}

// QualityStars maps a completion rate to 0-3 stars:
// 100 gives 3, [80,100) gives 2, [50,80) gives 1, anything lower 0.
func QualityStars(rate float64) int {
	switch {
	case rate >= 100:
		return 3
	case rate >= 80:
		return 2
	case rate >= 50:
		return 1
	default:
		return 0
	}
}
