package database

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"
)

// Health is one connectivity report for the pool.
type Health struct {
	Connected       bool      `json:"connected"`
	OpenConnections int       `json:"openConnections"`
	InUse           int       `json:"inUse"`
	Idle            int       `json:"idle"`
	WaitCount       int64     `json:"waitCount"`
	LatencyMs       int64     `json:"latencyMs"`
	LastChecked     time.Time `json:"lastChecked"`
	Error           string    `json:"error,omitempty"`
}

// HealthMonitor pings the database periodically and caches the last
// report. It is constructed once in main and passed to the handlers that
// need it; there is no package-level instance.
type HealthMonitor struct {
	db *sql.DB

	mu   sync.Mutex
	last *Health
	stop chan struct{}
	once sync.Once
}

func NewHealthMonitor(db *sql.DB) *HealthMonitor {
	return &HealthMonitor{
		db:   db,
		stop: make(chan struct{}),
	}
}

// Check runs a ping with latency measurement and snapshots the pool
// statistics. The report is cached for Last().
func (m *HealthMonitor) Check(ctx context.Context) Health {
	start := time.Now()
	stats := m.db.Stats()

	health := Health{
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		LastChecked:     time.Now(),
	}

	if err := m.db.PingContext(ctx); err != nil {
		health.Connected = false
		health.LatencyMs = time.Since(start).Milliseconds()
		health.Error = err.Error()
	} else {
		health.Connected = true
		health.LatencyMs = time.Since(start).Milliseconds()
	}

	m.mu.Lock()
	m.last = &health
	m.mu.Unlock()

	return health
}

// Run starts the periodic check loop in a goroutine. Stop halts it.
func (m *HealthMonitor) Run(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Println("Database health monitoring started")

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				health := m.Check(ctx)
				cancel()
				if !health.Connected {
					log.Printf("Database health check failed: %s", health.Error)
				}
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *HealthMonitor) Stop() {
	m.once.Do(func() { close(m.stop) })
}

// Last returns the most recent report, or nil before the first check.
func (m *HealthMonitor) Last() *Health {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
