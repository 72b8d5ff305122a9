package postgresql

import (
	"context"
	"time"
)

// HealthCheck represents database health information.
type HealthCheck struct {
	Status       string        `json:"status"`
	ResponseTime time.Duration `json:"response_time"`
	ActiveConns  int32         `json:"active_connections"`
	IdleConns    int32         `json:"idle_connections"`
	Error        string        `json:"error,omitempty"`
}

// CheckHealth pings the pool and reports its usage.
func (c *Client) CheckHealth(ctx context.Context) *HealthCheck {
	start := time.Now()
	stats := c.pool.Stat()

	health := &HealthCheck{
		Status:      "healthy",
		ActiveConns: stats.AcquiredConns(),
		IdleConns:   stats.IdleConns(),
	}

	if err := c.Ping(ctx); err != nil {
		health.Status = "unhealthy"
		health.Error = err.Error()
	}
	health.ResponseTime = time.Since(start)
	return health
}
