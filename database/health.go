package database

import (
	"fmt"
	"math"
	"strings"
	"time"

	"movesched-backend/models"

	"gorm.io/gorm"
)

// Health statuses, from best to worst.
const (
	StatusHealthy   = "healthy"
	StatusWarning   = "warning"
	StatusUnhealthy = "unhealthy"
)

// slowQueryThresholdMS flags count queries slower than this in the
// performance check.
const slowQueryThresholdMS = 100.0

var requiredTables = []string{"customers", "crew_members", "crews", "appointments"}

// CheckResult is the outcome of a single health probe. All fields are
// primitives or primitive collections so the report serializes stably.
type CheckResult struct {
	Status         string             `json:"status"`
	Message        string             `json:"message"`
	Error          string             `json:"error,omitempty"`
	ResponseTimeMS float64            `json:"response_time_ms,omitempty"`
	Tables         []string           `json:"tables,omitempty"`
	MissingTables  []string           `json:"missing_tables,omitempty"`
	Issues         []string           `json:"issues,omitempty"`
	Metrics        map[string]float64 `json:"metrics,omitempty"`
	SlowQueries    []string           `json:"slow_queries,omitempty"`
	Activity       map[string]string  `json:"activity,omitempty"`
}

type HealthSummary struct {
	TotalChecks int `json:"total_checks"`
	Healthy     int `json:"healthy"`
	Warnings    int `json:"warnings"`
	Unhealthy   int `json:"unhealthy"`
}

type HealthReport struct {
	OverallStatus string                 `json:"overall_status"`
	Timestamp     time.Time              `json:"timestamp"`
	Checks        map[string]CheckResult `json:"checks"`
	Summary       HealthSummary          `json:"summary"`
}

// HealthChecker runs a fixed set of independent probes against the store and
// folds their statuses into one overall verdict.
type HealthChecker struct {
	db *gorm.DB
}

func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// CheckConnection tests basic database connectivity with a trivial query.
func (h *HealthChecker) CheckConnection() CheckResult {
	start := time.Now()
	if err := h.db.Exec("SELECT 1").Error; err != nil {
		return CheckResult{
			Status:  StatusUnhealthy,
			Error:   err.Error(),
			Message: "Database connection failed",
		}
	}
	return CheckResult{
		Status:         StatusHealthy,
		ResponseTimeMS: roundMS(time.Since(start)),
		Message:        "Database connection successful",
	}
}

// CheckTables verifies all required tables exist by attempting a count query
// against each.
func (h *HealthChecker) CheckTables() CheckResult {
	var existing, missing []string
	for _, table := range requiredTables {
		var count int64
		if err := h.db.Table(table).Count(&count).Error; err != nil {
			missing = append(missing, table)
			continue
		}
		existing = append(existing, table)
	}

	if len(missing) == 0 {
		return CheckResult{
			Status:  StatusHealthy,
			Tables:  existing,
			Message: "All required tables exist",
		}
	}
	return CheckResult{
		Status:        StatusUnhealthy,
		Tables:        existing,
		MissingTables: missing,
		Message:       fmt.Sprintf("Missing tables: %s", strings.Join(missing, ", ")),
	}
}

// CheckDataIntegrity counts dangling references. Issues degrade the check to
// warning, not unhealthy.
func (h *HealthChecker) CheckDataIntegrity() CheckResult {
	var issues []string

	var orphanedAppointments int64
	err := h.db.Raw(
		"SELECT COUNT(*) FROM appointments WHERE customer_id NOT IN (SELECT id FROM customers)",
	).Scan(&orphanedAppointments).Error
	if err != nil {
		return CheckResult{
			Status:  StatusUnhealthy,
			Error:   err.Error(),
			Message: "Failed to check data integrity",
		}
	}
	if orphanedAppointments > 0 {
		issues = append(issues, fmt.Sprintf("%d appointments without valid customers", orphanedAppointments))
	}

	var danglingMemberships int64
	err = h.db.Raw(
		"SELECT COUNT(*) FROM crew_members_association WHERE crew_id NOT IN (SELECT id FROM crews)",
	).Scan(&danglingMemberships).Error
	if err != nil {
		return CheckResult{
			Status:  StatusUnhealthy,
			Error:   err.Error(),
			Message: "Failed to check data integrity",
		}
	}
	if danglingMemberships > 0 {
		issues = append(issues, fmt.Sprintf("%d crew membership links with invalid crew references", danglingMemberships))
	}

	if len(issues) == 0 {
		return CheckResult{
			Status:  StatusHealthy,
			Message: "Data integrity checks passed",
		}
	}
	return CheckResult{
		Status:  StatusWarning,
		Issues:  issues,
		Message: fmt.Sprintf("Data integrity issues found: %d", len(issues)),
	}
}

// CheckPerformance counts rows per table, recording query latency, and flags
// any count query slower than the threshold.
func (h *HealthChecker) CheckPerformance() CheckResult {
	metrics := make(map[string]float64, len(requiredTables)*2)
	var slowQueries []string

	for _, table := range requiredTables {
		var count int64
		start := time.Now()
		if err := h.db.Table(table).Count(&count).Error; err != nil {
			return CheckResult{
				Status:  StatusUnhealthy,
				Error:   err.Error(),
				Message: "Failed to collect performance metrics",
			}
		}
		elapsed := roundMS(time.Since(start))

		timeKey := table + "_query_time_ms"
		metrics[table] = float64(count)
		metrics[timeKey] = elapsed
		if elapsed > slowQueryThresholdMS {
			slowQueries = append(slowQueries, fmt.Sprintf("%s: %.2fms", timeKey, elapsed))
		}
	}

	if len(slowQueries) == 0 {
		return CheckResult{
			Status:  StatusHealthy,
			Metrics: metrics,
			Message: "Performance metrics normal",
		}
	}
	return CheckResult{
		Status:      StatusWarning,
		Metrics:     metrics,
		SlowQueries: slowQueries,
		Message:     fmt.Sprintf("Slow queries detected: %s", strings.Join(slowQueries, ", ")),
	}
}

// CheckRecentActivity counts records created in the last 24 hours.
// Informational only; always healthy when the queries succeed.
func (h *HealthChecker) CheckRecentActivity() CheckResult {
	last24h := time.Now().Add(-24 * time.Hour)

	var recentAppointments int64
	if err := h.db.Model(&models.Appointment{}).Where("created_at >= ?", last24h).Count(&recentAppointments).Error; err != nil {
		return CheckResult{
			Status:  StatusUnhealthy,
			Error:   err.Error(),
			Message: "Failed to check recent activity",
		}
	}

	var recentCustomers int64
	if err := h.db.Model(&models.Customer{}).Where("created_at >= ?", last24h).Count(&recentCustomers).Error; err != nil {
		return CheckResult{
			Status:  StatusUnhealthy,
			Error:   err.Error(),
			Message: "Failed to check recent activity",
		}
	}

	return CheckResult{
		Status: StatusHealthy,
		Activity: map[string]string{
			"recent_appointments": fmt.Sprintf("%d", recentAppointments),
			"recent_customers":    fmt.Sprintf("%d", recentCustomers),
			"period":              "24 hours",
		},
		Message: fmt.Sprintf("Recent activity: %d appointments, %d customers", recentAppointments, recentCustomers),
	}
}

// Run executes all checks and folds their statuses: any unhealthy check makes
// the overall verdict unhealthy, any warning raises healthy to warning. A
// check that panics is converted to an unhealthy result rather than
// propagating.
func (h *HealthChecker) Run() HealthReport {
	checks := []struct {
		name string
		fn   func() CheckResult
	}{
		{"connection", h.CheckConnection},
		{"tables", h.CheckTables},
		{"data_integrity", h.CheckDataIntegrity},
		{"performance", h.CheckPerformance},
		{"activity", h.CheckRecentActivity},
	}

	results := make(map[string]CheckResult, len(checks))
	overall := StatusHealthy
	for _, check := range checks {
		result := runCheck(check.name, check.fn)
		results[check.name] = result

		switch result.Status {
		case StatusUnhealthy:
			overall = StatusUnhealthy
		case StatusWarning:
			if overall == StatusHealthy {
				overall = StatusWarning
			}
		}
	}

	return HealthReport{
		OverallStatus: overall,
		Timestamp:     time.Now(),
		Checks:        results,
		Summary:       summarize(results),
	}
}

// GetDatabaseHealth runs all checks against the given store.
func GetDatabaseHealth(db *gorm.DB) HealthReport {
	return NewHealthChecker(db).Run()
}

func runCheck(name string, fn func() CheckResult) (result CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			result = CheckResult{
				Status:  StatusUnhealthy,
				Error:   fmt.Sprint(r),
				Message: "Health check failed: " + name,
			}
		}
	}()
	return fn()
}

func summarize(results map[string]CheckResult) HealthSummary {
	summary := HealthSummary{TotalChecks: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusHealthy:
			summary.Healthy++
		case StatusWarning:
			summary.Warnings++
		case StatusUnhealthy:
			summary.Unhealthy++
		}
	}
	return summary
}

func roundMS(d time.Duration) float64 {
	return math.Round(float64(d.Microseconds())/10) / 100
}
