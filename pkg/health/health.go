// Package health reports store reachability as a simple
// status/description/duration bundle.
package health

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"
)

// Statuses
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Check is the result of a single health probe
type Check struct {
	Status      string        `json:"status"`
	Description string        `json:"description"`
	Duration    time.Duration `json:"duration_ms"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Checker probes the backing store
type Checker struct {
	db      *sql.DB
	timeout time.Duration
}

// NewChecker creates a new health checker over the given database handle
func NewChecker(db *sql.DB) *Checker {
	return &Checker{db: db, timeout: 5 * time.Second}
}

// CheckStore pings the database and reports the outcome
func (c *Checker) CheckStore(ctx context.Context) Check {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	check := Check{Timestamp: start.UTC()}
	if err := c.db.PingContext(ctx); err != nil {
		check.Status = StatusUnhealthy
		check.Description = "Database unavailable: " + err.Error()
	} else {
		check.Status = StatusHealthy
		check.Description = "Database reachable"
	}
	check.Duration = time.Since(start)
	return check
}

// Handler serves GET /health
func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		check := c.CheckStore(r.Context())

		status := http.StatusOK
		if check.Status != StatusHealthy {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(check)
	}
}
