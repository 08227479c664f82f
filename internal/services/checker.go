package services

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sentinelx-dev/sentinelx/internal/models"
	"github.com/sentinelx-dev/sentinelx/internal/risk"
	"gorm.io/gorm"
)

// Addresses containing this token always produce a breach, for reproducible
// demos without the random simulation.
const demoAddressToken = "breachdemo"

const foundProbabilityCutoff = 0.6

var simulatedBreachNames = []string{
	"LinkedIn Leak",
	"Adobe Breach",
	"Canva Data Exposure",
}

var simulatedDataTypes = []string{
	"Email",
	"Email, Password",
	"Email, Password, Phone",
}

type CheckResult struct {
	BreachFound bool    `json:"breach_found"`
	RiskScore   float64 `json:"risk_score"`
	Status      string  `json:"status"`
	BreachName  string  `json:"breach_name,omitempty"`
	Severity    string  `json:"severity,omitempty"`
}

// BreachChecker runs a single monitoring check for one email: decide whether
// a breach was found, record it, recompute risk and raise an alert.
type BreachChecker struct {
	db     *gorm.DB
	alerts *AlertService

	rng   *rand.Rand
	rngMu sync.Mutex

	// Per-email locks serialize concurrent checks against the same id, so
	// two overlapping checks cannot both recompute risk from a stale
	// breach set.
	locks sync.Map
}

func NewBreachChecker(conn *gorm.DB, alerts *AlertService, rng *rand.Rand) *BreachChecker {
	return &BreachChecker{
		db:     conn,
		alerts: alerts,
		rng:    rng,
	}
}

// RunCheck executes one check for the email. The breach insert, risk
// recomputation and email update commit atomically; the alert is raised only
// after that transaction succeeds. When notification dispatch fails the
// populated result is returned together with the error, since the underlying
// writes are already committed.
func (c *BreachChecker) RunCheck(emailID uint) (CheckResult, error) {
	return c.run(emailID, c.decideBreach)
}

// InjectDemoBreach bypasses the breach decision and unconditionally records
// a critical demo breach, always raising an alert.
func (c *BreachChecker) InjectDemoBreach(emailID uint) (CheckResult, error) {
	return c.run(emailID, func(email models.Email) (bool, models.Breach) {
		return true, models.Breach{
			EmailID:    email.ID,
			Name:       "Dark Web Credential Dump",
			BreachDate: time.Now().Format("2006-01-02"),
			Severity:   models.SeverityCritical,
			DataTypes:  "Email, Password, Financial Data",
		}
	})
}

func (c *BreachChecker) run(emailID uint, decide func(models.Email) (bool, models.Breach)) (CheckResult, error) {
	unlock := c.lockEmail(emailID)
	defer unlock()

	var email models.Email
	var result CheckResult

	err := c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&email, emailID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmailNotFound
			}
			return err
		}

		found, breach := decide(email)

		if found {
			if err := tx.Create(&breach).Error; err != nil {
				return err
			}

			result.BreachFound = true
			result.BreachName = breach.Name
			result.Severity = breach.Severity
		}

		// Risk is always recomputed from the full stored history, so a
		// run that finds nothing still reflects prior breaches.
		var breaches []models.Breach

		if err := tx.Where("email_id = ?", email.ID).Find(&breaches).Error; err != nil {
			return err
		}

		assessment := risk.Calculate(breaches)
		now := time.Now()

		email.RiskScore = assessment.Score
		email.Status = assessment.Status
		email.LastCheckedAt = &now

		if err := tx.Save(&email).Error; err != nil {
			return err
		}

		result.RiskScore = assessment.Score
		result.Status = assessment.Status

		return nil
	})

	if err != nil {
		return CheckResult{}, err
	}

	if result.BreachFound {
		if err := c.alerts.SendAlert(&email, result.Severity, "Breach detected in "+result.BreachName); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (c *BreachChecker) decideBreach(email models.Email) (bool, models.Breach) {
	if strings.Contains(strings.ToLower(email.Address), demoAddressToken) {
		return true, models.Breach{
			EmailID:    email.ID,
			Name:       "Dark Web Credential Exposure",
			BreachDate: time.Now().Format("2006-01-02"),
			Severity:   models.SeverityCritical,
			DataTypes:  "Email, Password",
		}
	}

	c.rngMu.Lock()
	defer c.rngMu.Unlock()

	if c.rng.Float64() <= foundProbabilityCutoff {
		return false, models.Breach{}
	}

	name := simulatedBreachNames[c.rng.Intn(len(simulatedBreachNames))]
	dataTypes := simulatedDataTypes[c.rng.Intn(len(simulatedDataTypes))]

	severity := models.SeverityMedium

	if strings.Contains(dataTypes, "Password") {
		severity = models.SeverityHigh
	}

	return true, models.Breach{
		EmailID:    email.ID,
		Name:       name,
		BreachDate: time.Now().Format("2006-01-02"),
		Severity:   severity,
		DataTypes:  dataTypes,
	}
}

func (c *BreachChecker) lockEmail(emailID uint) func() {
	value, _ := c.locks.LoadOrStore(emailID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}
