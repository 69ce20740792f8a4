package utils

import (
	"log"
	"strconv"
	"time"

	"gradebook/store"

	"github.com/robfig/cron/v3"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[SESSION-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartSessionSweeper schedules a periodic purge of expired sessions.
// Resolve already rejects expired tokens; the sweep only reclaims the
// memory behind them. Returns the cron so callers can Stop it.
func StartSessionSweeper(sessions *store.SessionStore) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 1m", func() {
		if removed := sessions.Sweep(); removed > 0 {
			logSweeper("Purged " + strconv.Itoa(removed) + " expired session(s)")
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule session sweeper: %v", err)
	}

	c.Start()
	logSweeper("Scheduler started")
	return c
}
