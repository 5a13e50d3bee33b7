// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartSnapshotScheduler flushes dirty game states to the snapshot table on
// an interval, so a crash loses at most one interval of play.
func (m *StateManager) StartSnapshotScheduler(interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if flushed := m.FlushAll(); flushed > 0 {
				log.Printf("💾 Autosaved %d game state(s)", flushed)
			}
		}),
	)
}
