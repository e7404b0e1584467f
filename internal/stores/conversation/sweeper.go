package conversation

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/promptline/relay/pkg/utils"
)

// Sweeper evicts idle sessions on a cron schedule. Retention is
// unbounded by default: the sweeper only runs when both
// CONVERSATION_SWEEP_SCHEDULE and CONVERSATION_IDLE_TIMEOUT are
// configured, so eviction is always an explicit operator choice
type Sweeper struct {
	store       *Store
	idleTimeout time.Duration
	cron        *cron.Cron
}

// NewSweeper creates a sweeper from config.
// Returns nil (and no error) when sweeping is not configured
func NewSweeper(cfg *utils.Config, store *Store) (*Sweeper, error) {
	schedule := cfg.Get("CONVERSATION_SWEEP_SCHEDULE")
	timeout := cfg.Get("CONVERSATION_IDLE_TIMEOUT")

	if schedule == "" && timeout == "" {
		return nil, nil
	}
	if schedule == "" || timeout == "" {
		return nil, fmt.Errorf("CONVERSATION_SWEEP_SCHEDULE and CONVERSATION_IDLE_TIMEOUT must be set together")
	}

	idleTimeout, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid CONVERSATION_IDLE_TIMEOUT: %w", err)
	}
	if idleTimeout <= 0 {
		return nil, fmt.Errorf("CONVERSATION_IDLE_TIMEOUT must be positive")
	}

	s := &Sweeper{
		store:       store,
		idleTimeout: idleTimeout,
		cron:        cron.New(),
	}

	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("invalid CONVERSATION_SWEEP_SCHEDULE: %w", err)
	}

	return s, nil
}

// Start begins the sweep schedule
func (s *Sweeper) Start() {
	s.cron.Start()
	log.Printf("[SWEEPER]: Started, evicting sessions idle longer than %s", s.idleTimeout)
}

// Stop halts the sweep schedule, waiting for a running sweep to finish
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// sweep evicts every session idle longer than the timeout
func (s *Sweeper) sweep() {
	cutoff := time.Now().UTC().Add(-s.idleTimeout)
	evicted := s.store.EvictIdle(cutoff)

	if len(evicted) > 0 {
		log.Printf("[SWEEPER]: Evicted %d idle sessions, %d remaining", len(evicted), s.store.Len())
	}
}
