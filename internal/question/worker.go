package question

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const defaultWarmInterval = time.Minute

type categoryRefresher interface {
	RefreshCategories(ctx context.Context) ([]Category, error)
}

// CategoryWarmer keeps the category cache populated so list endpoints rarely
// fall through to Postgres.
type CategoryWarmer struct {
	service  categoryRefresher
	logger   zerolog.Logger
	interval time.Duration
	timeout  time.Duration
}

func NewCategoryWarmer(service categoryRefresher, interval time.Duration, logger zerolog.Logger) *CategoryWarmer {
	if interval <= 0 {
		interval = defaultWarmInterval
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &CategoryWarmer{
		service:  service,
		logger:   logger.With().Str("component", "category_warmer").Logger(),
		interval: interval,
		timeout:  timeout,
	}
}

// Run refreshes immediately and then on every tick until ctx is cancelled.
func (w *CategoryWarmer) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("category warmer stopping")
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *CategoryWarmer) tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	categories, err := w.service.RefreshCategories(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("category refresh failed")
		return
	}
	w.logger.Debug().Int("categories", len(categories)).Msg("category cache refreshed")
}
