package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Cleaner is the blacklist pruning job (AuthService.CleanupBlacklist).
type Cleaner interface {
	CleanupBlacklist(ctx context.Context) (int64, error)
}

// StartBlacklistCleanupScheduler runs the cleaner on spec (cron syntax or
// descriptors such as "@daily"). The caller stops the returned cron on shutdown.
func StartBlacklistCleanupScheduler(cleaner Cleaner, spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(spec, func() { runCleanup(cleaner) })
	if err != nil {
		return nil, err
	}
	log.Printf("[CLEANUP] token_blacklist cleanup scheduled %q", spec)
	c.Start()
	return c, nil
}

func runCleanup(cleaner Cleaner) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := cleaner.CleanupBlacklist(ctx)
	switch {
	case err != nil:
		log.Printf("[CLEANUP ERROR] token_blacklist: %v", err)
	case n > 0:
		log.Printf("[CLEANUP] %d expired tokens removed", n)
	default:
		log.Println("[CLEANUP] nothing to remove")
	}
}
