package risk

import (
	"strings"

	"github.com/sentinelx-dev/sentinelx/internal/models"
)

// Severity base contributions per breach.
const (
	criticalPoints = 50
	highPoints     = 35
	mediumPoints   = 20

	passwordPoints = 20
	phonePoints    = 10

	maxScore = 100
)

// Score thresholds for the derived status.
const (
	compromisedThreshold = 70
	atRiskThreshold      = 40
)

type Result struct {
	Score  float64 `json:"score"`
	Status string  `json:"status"`
}

// Calculate derives a cumulative risk score and status from an email's full
// breach history. It is pure: callers persist the result themselves.
func Calculate(breaches []models.Breach) Result {
	score := 0.0

	for _, breach := range breaches {
		switch strings.ToLower(breach.Severity) {
		case models.SeverityCritical:
			score += criticalPoints
		case models.SeverityHigh:
			score += highPoints
		case models.SeverityMedium:
			score += mediumPoints
		}

		// Leaked-data tokens are matched case-sensitively against the
		// canonical labels the check pipeline writes ("Password", "Phone").
		if strings.Contains(breach.DataTypes, "Password") {
			score += passwordPoints
		}

		if strings.Contains(breach.DataTypes, "Phone") {
			score += phonePoints
		}
	}

	if score > maxScore {
		score = maxScore
	}

	return Result{
		Score:  score,
		Status: StatusForScore(score),
	}
}

// StatusForScore maps a score to its status label.
func StatusForScore(score float64) string {
	switch {
	case score >= compromisedThreshold:
		return models.StatusCompromised
	case score >= atRiskThreshold:
		return models.StatusAtRisk
	default:
		return models.StatusSafe
	}
}
