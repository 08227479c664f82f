package risk_test

import (
	"testing"

	"github.com/sentinelx-dev/sentinelx/internal/models"
	"github.com/sentinelx-dev/sentinelx/internal/risk"
	"github.com/stretchr/testify/assert"
)

func breach(severity, dataTypes string) models.Breach {
	return models.Breach{Name: "Test Breach", Severity: severity, DataTypes: dataTypes}
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name       string
		breaches   []models.Breach
		wantScore  float64
		wantStatus string
	}{
		{
			name:       "no breaches",
			breaches:   nil,
			wantScore:  0,
			wantStatus: models.StatusSafe,
		},
		{
			name:       "single critical",
			breaches:   []models.Breach{breach("critical", "Email")},
			wantScore:  50,
			wantStatus: models.StatusAtRisk,
		},
		{
			name:       "critical with password",
			breaches:   []models.Breach{breach("critical", "Email, Password")},
			wantScore:  70,
			wantStatus: models.StatusCompromised,
		},
		{
			name:       "severity matching is case-insensitive",
			breaches:   []models.Breach{breach("CRITICAL", "Email")},
			wantScore:  50,
			wantStatus: models.StatusAtRisk,
		},
		{
			name:       "high with password",
			breaches:   []models.Breach{breach("high", "Email, Password")},
			wantScore:  55,
			wantStatus: models.StatusAtRisk,
		},
		{
			name:       "medium only",
			breaches:   []models.Breach{breach("medium", "Email")},
			wantScore:  20,
			wantStatus: models.StatusSafe,
		},
		{
			name:       "medium with phone",
			breaches:   []models.Breach{breach("medium", "Email, Phone")},
			wantScore:  30,
			wantStatus: models.StatusSafe,
		},
		{
			name:       "two medium hit the at-risk boundary",
			breaches:   []models.Breach{breach("medium", "Email"), breach("medium", "Email")},
			wantScore:  40,
			wantStatus: models.StatusAtRisk,
		},
		{
			name:       "unrecognized severity scores nothing",
			breaches:   []models.Breach{breach("low", "Email"), breach("", "Email")},
			wantScore:  0,
			wantStatus: models.StatusSafe,
		},
		{
			name:       "lowercase password token does not match",
			breaches:   []models.Breach{breach("critical", "email, password")},
			wantScore:  50,
			wantStatus: models.StatusAtRisk,
		},
		{
			name: "score clamps at 100",
			breaches: []models.Breach{
				breach("critical", "Email, Password, Phone"),
				breach("critical", "Email, Password, Phone"),
				breach("critical", "Email, Password, Phone"),
			},
			wantScore:  100,
			wantStatus: models.StatusCompromised,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := risk.Calculate(tc.breaches)

			assert.Equal(t, tc.wantScore, result.Score)
			assert.Equal(t, tc.wantStatus, result.Status)
		})
	}
}

func TestCalculateScoreAlwaysInRange(t *testing.T) {
	sets := [][]models.Breach{
		nil,
		{breach("critical", "Email, Password, Phone")},
		{breach("high", ""), breach("high", ""), breach("high", ""), breach("high", "")},
		{breach("garbage", "Password"), breach("", "Phone")},
	}

	for _, set := range sets {
		result := risk.Calculate(set)

		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 100.0)
		assert.Equal(t, risk.StatusForScore(result.Score), result.Status)
	}
}

func TestStatusForScoreThresholds(t *testing.T) {
	assert.Equal(t, models.StatusSafe, risk.StatusForScore(0))
	assert.Equal(t, models.StatusSafe, risk.StatusForScore(39.9))
	assert.Equal(t, models.StatusAtRisk, risk.StatusForScore(40))
	assert.Equal(t, models.StatusAtRisk, risk.StatusForScore(69.9))
	assert.Equal(t, models.StatusCompromised, risk.StatusForScore(70))
	assert.Equal(t, models.StatusCompromised, risk.StatusForScore(100))
}
