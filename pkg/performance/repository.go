package performance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jellydator/ttlcache/v3"
)

type Config struct {
	CacheTTL      time.Duration
	RetryAttempts uint
	RetryDelay    time.Duration
}

var DefaultConfig = &Config{
	CacheTTL:      time.Minute,
	RetryAttempts: 3,
	RetryDelay:    100 * time.Millisecond,
}

// Repository averages the monthly records of a DAO.
type Repository struct {
	dao   DAO
	cfg   *Config
	cache *ttlcache.Cache[string, float32]
}

func NewRepository(dao DAO, cfg *Config) *Repository {
	if cfg == nil {
		cfg = DefaultConfig
	}
	return &Repository{
		dao:   dao,
		cfg:   cfg,
		cache: ttlcache.New[string, float32](ttlcache.WithTTL[string, float32](cfg.CacheTTL)),
	}
}

// PerformanceByMonth returns the average of the values recorded for
// yearMonth, or 0 when there are none.
func (r *Repository) PerformanceByMonth(ctx context.Context, yearMonth string) (float32, error) {
	if item := r.cache.Get(yearMonth); item != nil {
		return item.Value(), nil
	}

	count, err := r.CountPerformanceByMonth(ctx, yearMonth)
	if err != nil {
		return 0, err
	}
	var avg float32
	if count > 0 {
		sum, err := withRetry(ctx, r.cfg, func() (float32, error) {
			return r.dao.PerformanceByMonth(ctx, yearMonth)
		})
		if err != nil {
			return 0, fmt.Errorf("performance by month %s: %w", yearMonth, err)
		}
		avg = sum / float32(count)
	}

	r.cache.Set(yearMonth, avg, ttlcache.DefaultTTL)
	return avg, nil
}

func (r *Repository) CountPerformanceByMonth(ctx context.Context, yearMonth string) (int, error) {
	count, err := withRetry(ctx, r.cfg, func() (int, error) {
		return r.dao.CountPerformanceByMonth(ctx, yearMonth)
	})
	if err != nil {
		return 0, fmt.Errorf("count performance by month %s: %w", yearMonth, err)
	}
	return count, nil
}

var ErrReadOnly = errors.New("data source is read only")

// Add stores a record and drops the cached average for its month.
func (r *Repository) Add(ctx context.Context, rec Record) error {
	w, ok := r.dao.(Writer)
	if !ok {
		return ErrReadOnly
	}
	if err := w.Insert(ctx, rec); err != nil {
		return err
	}
	r.cache.Delete(rec.YearMonth)
	return nil
}

// Purge empties the average cache.
func (r *Repository) Purge() {
	r.cache.DeleteAll()
}

func withRetry[T any](ctx context.Context, cfg *Config, fn func() (T, error)) (T, error) {
	attempts := cfg.RetryAttempts
	if attempts == 0 {
		attempts = 1
	}
	return retry.DoWithData(fn,
		retry.Context(ctx),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(cfg.RetryDelay),
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
	)
}
