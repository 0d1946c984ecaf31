package usecase

//go:generate mockgen -destination=../adapter/http/handlers/mocks/usecase_mock.go -package=mocks mutual_cartera/internal/usecase IImportUseCase,IDashboardUseCase,IClientUseCase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"mutual_cartera/internal/domain/ingest"
	"mutual_cartera/internal/infrastructure/logging"
	"mutual_cartera/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	DefaultBatchSize            = 100
	DefaultMaxConcurrentBatches = 4
)

var (
	ErrUnreadableSpreadsheet = errors.New("unreadable spreadsheet")
	ErrEmptySpreadsheet      = errors.New("spreadsheet has no data rows")
	ErrNoValidRows           = errors.New("spreadsheet has no valid rows")
)

// ImportSummary describes one completed (or partially committed) import.
type ImportSummary struct {
	ImportID         string
	Rows             int
	Installments     int
	Clients          int
	Skipped          []ingest.SkippedRow
	Batches          int
	CommittedBatches int
	StartedAt        time.Time
	FinishedAt       time.Time
}

// ProgressFunc is called once per committed batch.
type ProgressFunc func(committed, total int)

type ImportOptions struct {
	BatchSize            int
	MaxConcurrentBatches int
	// BatchesPerSecond throttles writes; 0 disables throttling.
	BatchesPerSecond float64
	Location         *time.Location
}

// IImportUseCase ingests a portfolio spreadsheet into the record store.
type IImportUseCase interface {
	Import(ctx context.Context, r io.Reader) (ImportSummary, error)
}

type ImportUseCase struct {
	reader       interfaces.ISpreadsheetReader
	installments interfaces.IInstallmentRepository
	clients      interfaces.IClientRepository
	opts         ImportOptions
	logger       *logging.Logger
	progress     ProgressFunc
	now          func() time.Time
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(
	reader interfaces.ISpreadsheetReader,
	installments interfaces.IInstallmentRepository,
	clients interfaces.IClientRepository,
	opts ImportOptions,
	logger *logging.Logger,
) *ImportUseCase {
	if opts.BatchSize <= 0 || opts.BatchSize > DefaultBatchSize {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.MaxConcurrentBatches <= 0 {
		opts.MaxConcurrentBatches = DefaultMaxConcurrentBatches
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &ImportUseCase{
		reader:       reader,
		installments: installments,
		clients:      clients,
		opts:         opts,
		logger:       logger.WithComponent("import"),
		now:          time.Now,
	}
}

// WithProgress registers a callback for committed batches.
func (u *ImportUseCase) WithProgress(fn ProgressFunc) *ImportUseCase {
	u.progress = fn
	return u
}

func (u *ImportUseCase) Import(ctx context.Context, r io.Reader) (ImportSummary, error) {
	summary := ImportSummary{
		ImportID:  uuid.NewString(),
		StartedAt: u.now().UTC(),
	}
	log := u.logger.With().Str("import_id", summary.ImportID).Logger()

	rows, err := u.reader.ReadRows(r)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnreadableSpreadsheet, err)
	}
	res := ingest.Normalize(rows, u.now(), u.opts.Location)
	if res.Rows == 0 {
		return summary, ErrEmptySpreadsheet
	}
	summary.Rows = res.Rows
	summary.Installments = len(res.Installments)
	summary.Clients = len(res.Clients)
	summary.Skipped = res.Skipped
	for _, s := range res.Skipped {
		log.Debug().Int("row", s.Row).Err(s.Reason).Msg("row skipped")
	}
	if len(res.Installments) == 0 {
		return summary, ErrNoValidRows
	}

	batches := u.plan(res)
	summary.Batches = len(batches)
	log.Info().
		Int("rows", res.Rows).
		Int("installments", summary.Installments).
		Int("clients", summary.Clients).
		Int("skipped", len(res.Skipped)).
		Int("batches", summary.Batches).
		Msg("import started")

	committed, err := u.commit(ctx, batches)
	summary.CommittedBatches = committed
	summary.FinishedAt = u.now().UTC()
	if err != nil {
		log.Error().Err(err).Int("committed", committed).Msg("import failed")
		return summary, err
	}

	log.Info().Dur("took", summary.FinishedAt.Sub(summary.StartedAt)).Msg("import finished")
	return summary, nil
}

type writeBatch func(ctx context.Context) error

func (u *ImportUseCase) plan(res ingest.Result) []writeBatch {
	size := u.opts.BatchSize
	var batches []writeBatch
	for _, part := range chunkSlice(res.Clients, size) {
		part := part
		batches = append(batches, func(ctx context.Context) error {
			if err := u.clients.UpsertBatch(ctx, part); err != nil {
				return fmt.Errorf("upsert clients: %w", err)
			}
			return nil
		})
	}
	for _, part := range chunkSlice(res.Installments, size) {
		part := part
		batches = append(batches, func(ctx context.Context) error {
			if err := u.installments.UpsertBatch(ctx, part); err != nil {
				return fmt.Errorf("upsert installments: %w", err)
			}
			return nil
		})
	}
	return batches
}

// commit runs every batch and waits for all of them. Batches already
// written stay written when a later one fails.
func (u *ImportUseCase) commit(ctx context.Context, batches []writeBatch) (int, error) {
	var limiter *rate.Limiter
	if u.opts.BatchesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(u.opts.BatchesPerSecond), 1)
	}

	var (
		mu        sync.Mutex
		committed int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.opts.MaxConcurrentBatches)
	for _, batch := range batches {
		batch := batch
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if limiter != nil {
				if err := limiter.Wait(gctx); err != nil {
					return err
				}
			}
			if err := batch(gctx); err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			committed++
			if u.progress != nil {
				u.progress(committed, len(batches))
			}
			return nil
		})
	}
	err := g.Wait()
	return committed, err
}

func chunkSlice[T any](items []T, size int) [][]T {
	var out [][]T
	for start := 0; start < len(items); start += size {
		out = append(out, items[start:min(start+size, len(items))])
	}
	return out
}
