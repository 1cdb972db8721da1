package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	// StatusUp indicates the service is healthy and running
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the service is not healthy or not running
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck pings the server within timeout and reports pool counters as details
func HealthCheck(ctx context.Context, client *Client, timeout time.Duration) (HealthStatus, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	details := map[string]string{
		"addr": client.GetConfig().Addr(),
	}

	if err := client.Ping(ctx); err != nil {
		details["message"] = fmt.Sprintf("ping failed: %v", err)
		return StatusDown, details
	}

	if stats := client.PoolStats(); stats != nil {
		details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
		details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
		details["timeouts"] = strconv.FormatUint(uint64(stats.Timeouts), 10)
	}
	details["message"] = string(StatusUp)
	return StatusUp, details
}
