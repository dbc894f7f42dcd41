package database

import (
	"context"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Store is the injected session layer. Controllers and services receive it
// instead of reaching for a global handle.
type Store struct {
	DB       *gorm.DB
	Watchdog time.Duration

	// onHeld is called when a transaction outlives Watchdog. Defaults to a log line.
	onHeld func(held time.Duration)
}

func NewStore(db *gorm.DB, watchdog time.Duration) *Store {
	return &Store{DB: db, Watchdog: watchdog}
}

// Conn returns a session bound to ctx for single statements.
func (s *Store) Conn(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx)
}

// Tx runs fn inside one transaction. A watchdog warns (but never cancels)
// when the checked-out session is held longer than s.Watchdog.
func (s *Store) Tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	stop := armWatchdog(s.Watchdog, s.heldHook())
	defer stop()

	return s.DB.WithContext(ctx).Transaction(fn)
}

func (s *Store) heldHook() func(time.Duration) {
	if s.onHeld != nil {
		return s.onHeld
	}
	return func(held time.Duration) {
		log.Printf("[WARN] transaction held for %s (watchdog %s)", held, s.Watchdog)
	}
}

// armWatchdog fires onExpire once if the returned stop func is not called
// within limit. limit <= 0 disables it.
func armWatchdog(limit time.Duration, onExpire func(time.Duration)) (stop func()) {
	if limit <= 0 {
		return func() {}
	}
	start := time.Now()
	t := time.AfterFunc(limit, func() {
		onExpire(time.Since(start))
	})
	var once sync.Once
	return func() {
		once.Do(func() { t.Stop() })
	}
}
