// Package session ties a profile's reminder engine to its timers. One
// session is alive at a time; switching profiles tears down the old timers
// before the new engine starts.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/selahapp/selah/internal/analysis"
	"github.com/selahapp/selah/internal/constants"
	"github.com/selahapp/selah/internal/journal"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/reminder"
	"github.com/selahapp/selah/internal/scripture"
	"github.com/selahapp/selah/internal/storage"
)

// Config wires a Session. Store is required; Archive, Analyzer, Verses and
// Notifier are optional collaborators passed through to the engine.
type Config struct {
	Store    storage.Provider
	Archive  journal.Archive
	Analyzer analysis.Analyzer
	Verses   scripture.Lookup
	Notifier reminder.Notifier
}

type Session struct {
	mu      sync.Mutex
	cfg     Config
	entries *journal.Store
	engine  *reminder.Engine
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func New(cfg Config) *Session {
	return &Session{cfg: cfg}
}

// Engine returns the active profile's engine, or nil before the first
// SwitchProfile.
func (s *Session) Engine() *reminder.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine
}

// Entries returns the active profile's entry store, or nil before the first
// SwitchProfile.
func (s *Session) Entries() *journal.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries
}

// SwitchProfile stops the current profile's timers, loads the named
// profile's entries, builds a fresh engine and runs its catch-up backfill.
// Reminder state never crosses profiles: the new engine starts idle.
func (s *Session) SwitchProfile(profile string) error {
	s.stopTimers()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cfg.Store.EnsureProfile(profile); err != nil {
		return err
	}
	if err := s.cfg.Store.SetActiveProfile(profile); err != nil {
		return err
	}

	entries := journal.NewStore(s.cfg.Archive)
	if err := entries.LoadProfile(profile); err != nil {
		return err
	}

	engine := reminder.New(reminder.Config{
		Profile:  profile,
		Store:    s.cfg.Store,
		Entries:  entries,
		Analyzer: s.cfg.Analyzer,
		Verses:   s.cfg.Verses,
		Notifier: s.cfg.Notifier,
	})

	if _, err := engine.RunBackfill(); err != nil {
		logger.Warn("Backfill on profile switch failed", "profile", profile, "error", err)
	}

	s.entries = entries
	s.engine = engine
	return nil
}

// Start launches the polling and day-rollover timers for the active
// profile. No-op if timers are already running or no profile is loaded.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil || s.engine == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	engine := s.engine

	s.wg.Add(2)
	go s.pollLoop(ctx, engine)
	go s.rolloverLoop(ctx, engine)
}

// Stop cancels the timers and waits for them to exit.
func (s *Session) Stop() {
	s.stopTimers()
}

func (s *Session) stopTimers() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		s.wg.Wait()
	}
}

func (s *Session) pollLoop(ctx context.Context, engine *reminder.Engine) {
	defer s.wg.Done()

	ticker := time.NewTicker(constants.PollInterval)
	defer ticker.Stop()

	// Evaluate immediately so a slot matching the launch minute still fires
	if err := engine.CheckReminders(time.Now()); err != nil {
		logger.Warn("Reminder check failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := engine.CheckReminders(now); err != nil {
				logger.Warn("Reminder check failed", "error", err)
			}
		}
	}
}

func (s *Session) rolloverLoop(ctx context.Context, engine *reminder.Engine) {
	defer s.wg.Done()

	ticker := time.NewTicker(constants.RolloverInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			engine.HandleDayRollover(now)
		}
	}
}
