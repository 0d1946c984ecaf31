package interfaces

//go:generate mockgen -source=installment_repository_interface.go -destination=mocks/installment_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"mutual_cartera/internal/domain/entities"
)

// IInstallmentRepository abstracts DynamoDB persistence for Installment.
//
// The portfolio service must be able to:
//   - upsert a batch of installments atomically, keyed by the natural key
//   - list installments due inside a date range (period dashboards, liquidity)
//   - list installments by status regardless of date (global delinquency)
type IInstallmentRepository interface {
	UpsertBatch(ctx context.Context, items []entities.Installment) error
	ListByDueDateRange(ctx context.Context, start, end time.Time) ([]entities.Installment, error)
	ListByStatus(ctx context.Context, statuses []entities.InstallmentStatus) ([]entities.Installment, error)
}
