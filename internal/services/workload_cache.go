package services

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"
	"time"
)

// MetricsCache is a short-TTL cache layered outside the pure engine so
// dashboard repaints do not recompute. Keys combine employee, input
// snapshot hash and a time bucket; anything older than one TTL bucket
// misses naturally.
type MetricsCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	metrics *WorkloadMetrics
	expires time.Time
}

func NewMetricsCache(ttl time.Duration) *MetricsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &MetricsCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// SnapshotHash returns the SHA-256 hex digest of an employee snapshot.
// Identical inputs hash identically, so an unchanged snapshot within the
// same time bucket is a cache hit.
func SnapshotHash(snap EmployeeSnapshot) string {
	var b strings.Builder
	if snap.Employee != nil {
		fmt.Fprintf(&b, "e:%d:%s:%g\n", snap.Employee.ID, snap.Employee.DisplayName, snap.Employee.DailyHourTarget)
	}
	for i := range snap.Tasks {
		t := &snap.Tasks[i]
		deadline := ""
		if t.Deadline != nil {
			deadline = dateKey(*t.Deadline)
		}
		fmt.Fprintf(&b, "t:%d:%g:%g:%s:%s:%d:%d\n",
			t.ID, t.EstimatedHours, t.ReportedHours, deadline, t.Status,
			t.CreatedAt.Unix(), t.UpdatedAt.Unix())
	}
	for i := range snap.Entries {
		e := &snap.Entries[i]
		taskID := uint(0)
		if e.TaskID != nil {
			taskID = *e.TaskID
		}
		fmt.Fprintf(&b, "n:%d:%s:%d\n", taskID, dateKey(e.Date), e.Minutes)
	}

	h := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%x", h)
}

func (c *MetricsCache) key(employeeID uint, hash string, now time.Time) string {
	bucket := now.Unix() / int64(c.ttl.Seconds())
	return fmt.Sprintf("%d:%s:%d", employeeID, hash, bucket)
}

// Get returns the cached metrics for the key, nil on miss.
func (c *MetricsCache) Get(employeeID uint, hash string, now time.Time) *WorkloadMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[c.key(employeeID, hash, now)]
	if !ok || now.After(entry.expires) {
		return nil
	}
	return entry.metrics
}

// Put stores computed metrics and prunes expired entries in passing.
func (c *MetricsCache) Put(employeeID uint, hash string, now time.Time, metrics *WorkloadMetrics) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, k)
		}
	}

	c.entries[c.key(employeeID, hash, now)] = cacheEntry{
		metrics: metrics,
		expires: now.Add(c.ttl),
	}
}
