package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"mutual_cartera/internal/domain/analytics"
	"mutual_cartera/internal/domain/entities"
	"mutual_cartera/internal/infrastructure/logging"
	"mutual_cartera/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// DefaultClientDirectoryTTL bounds how stale the cached client directory may
// get before a dashboard load refreshes it.
const DefaultClientDirectoryTTL = 10 * time.Minute

var ErrInvalidDateRange = errors.New("invalid date range")

var outstandingStatuses = []entities.InstallmentStatus{
	entities.InstallmentStatusImpago,
	entities.InstallmentStatusParcial,
}

// IDashboardUseCase computes the portfolio dashboards.
type IDashboardUseCase interface {
	Period(ctx context.Context, start, end time.Time) (entities.PeriodMetrics, error)
	Delinquency(ctx context.Context) (entities.DelinquencyMetrics, error)
	Liquidity(ctx context.Context) (entities.LiquidityProjection, error)
	RefreshClients(ctx context.Context) (int, error)
}

type DashboardOptions struct {
	ProjectionMonths int
	DirectoryTTL     time.Duration
	Location         *time.Location
}

type DashboardUseCase struct {
	installments interfaces.IInstallmentRepository
	clients      interfaces.IClientRepository
	opts         DashboardOptions
	logger       *logging.Logger
	now          func() time.Time

	mu        sync.RWMutex
	directory analytics.ClientCache
	loadedAt  time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	installments interfaces.IInstallmentRepository,
	clients interfaces.IClientRepository,
	opts DashboardOptions,
	logger *logging.Logger,
) *DashboardUseCase {
	if opts.ProjectionMonths <= 0 {
		opts.ProjectionMonths = analytics.DefaultProjectionMonths
	}
	if opts.DirectoryTTL <= 0 {
		opts.DirectoryTTL = DefaultClientDirectoryTTL
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &DashboardUseCase{
		installments: installments,
		clients:      clients,
		opts:         opts,
		logger:       logger.WithComponent("dashboard"),
		now:          time.Now,
	}
}

func (u *DashboardUseCase) today() time.Time {
	return u.now().In(u.opts.Location)
}

// Period loads installments due in [start, end] and the client directory
// concurrently, then aggregates them in one pass.
func (u *DashboardUseCase) Period(ctx context.Context, start, end time.Time) (entities.PeriodMetrics, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return entities.PeriodMetrics{}, ErrInvalidDateRange
	}

	var items []entities.Installment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = u.installments.ListByDueDateRange(gctx, start, end)
		return err
	})
	g.Go(func() error {
		return u.ensureDirectory(gctx)
	})
	if err := g.Wait(); err != nil {
		return entities.PeriodMetrics{}, err
	}

	metrics := analytics.AggregatePeriod(items, u.snapshot(), u.today())
	u.logger.Debug().
		Time("start", start).
		Time("end", end).
		Int("records", metrics.Records).
		Msg("period metrics computed")
	return metrics, nil
}

// Delinquency ages every outstanding installment regardless of period.
func (u *DashboardUseCase) Delinquency(ctx context.Context) (entities.DelinquencyMetrics, error) {
	var items []entities.Installment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = u.installments.ListByStatus(gctx, outstandingStatuses)
		return err
	})
	g.Go(func() error {
		return u.ensureDirectory(gctx)
	})
	if err := g.Wait(); err != nil {
		return entities.DelinquencyMetrics{}, err
	}

	return analytics.AggregateGlobalDelinquency(items, u.snapshot(), u.today()), nil
}

func (u *DashboardUseCase) Liquidity(ctx context.Context) (entities.LiquidityProjection, error) {
	today := u.today()
	items, err := u.installments.ListByDueDateRange(ctx, today, today.AddDate(0, u.opts.ProjectionMonths, 0))
	if err != nil {
		return entities.LiquidityProjection{}, err
	}
	return analytics.ProjectLiquidity(items, today, u.opts.ProjectionMonths), nil
}

// RefreshClients reloads the client directory and returns its size.
func (u *DashboardUseCase) RefreshClients(ctx context.Context) (int, error) {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return 0, err
	}
	cache := analytics.NewClientCache(clients)

	u.mu.Lock()
	u.directory = cache
	u.loadedAt = u.now()
	u.mu.Unlock()

	u.logger.Info().Int("clients", len(cache)).Msg("client directory refreshed")
	return len(cache), nil
}

func (u *DashboardUseCase) ensureDirectory(ctx context.Context) error {
	u.mu.RLock()
	fresh := u.directory != nil && u.now().Sub(u.loadedAt) < u.opts.DirectoryTTL
	u.mu.RUnlock()
	if fresh {
		return nil
	}
	_, err := u.RefreshClients(ctx)
	return err
}

// snapshot returns the current directory. Refreshes replace the map, they
// never mutate it, so callers may read it without holding the lock.
func (u *DashboardUseCase) snapshot() analytics.ClientCache {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.directory
}
