package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mutual_cartera/internal/domain/entities"
	"mutual_cartera/internal/infrastructure/logging"
	mock_interfaces "mutual_cartera/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var dashboardNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

func newDashboardUseCase(t *testing.T) (*DashboardUseCase, *mock_interfaces.MockIInstallmentRepository, *mock_interfaces.MockIClientRepository) {
	ctrl := gomock.NewController(t)
	installments := mock_interfaces.NewMockIInstallmentRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewDashboardUseCase(installments, clients, DashboardOptions{}, logging.NewSilentLogger())
	uc.now = func() time.Time { return dashboardNow }
	return uc, installments, clients
}

func TestDashboardUseCase_Period(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	t.Run("invalid range", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil, DashboardOptions{}, logging.NewSilentLogger())
		_, err := uc.Period(context.Background(), end, start)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, installments, clients := newDashboardUseCase(t)
		installments.EXPECT().ListByDueDateRange(gomock.Any(), start, end).Return(nil, errors.New("db"))
		clients.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := uc.Period(context.Background(), start, end)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success resolves names from the directory", func(t *testing.T) {
		uc, installments, clients := newDashboardUseCase(t)
		installments.EXPECT().ListByDueDateRange(gomock.Any(), start, end).Return([]entities.Installment{
			{
				LoanID: "L1", InstallmentNumber: 1, ClientCUIT: "20-1",
				DueDate: ptr(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)), PaymentDate: ptr(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
				ExpectedAmount: 100, PaidAmount: 100, Status: entities.InstallmentStatusPagado,
			},
		}, nil)
		clients.EXPECT().List(gomock.Any()).Return([]entities.Client{{CUIT: "20-1", FullName: "Ana"}}, nil)

		m, err := uc.Period(context.Background(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Records != 1 || m.KPIs.Paid != 100 {
			t.Fatalf("unexpected metrics: %+v", m.KPIs)
		}
		if len(m.TopPayers) != 1 || m.TopPayers[0].Name != "Ana" {
			t.Fatalf("unexpected payers: %+v", m.TopPayers)
		}
	})

	t.Run("directory is reused while fresh", func(t *testing.T) {
		uc, installments, clients := newDashboardUseCase(t)
		installments.EXPECT().ListByDueDateRange(gomock.Any(), start, end).Return(nil, nil).Times(2)
		clients.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

		if _, err := uc.Period(context.Background(), start, end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Period(context.Background(), start, end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDashboardUseCase_Delinquency(t *testing.T) {
	uc, installments, clients := newDashboardUseCase(t)
	installments.EXPECT().ListByStatus(gomock.Any(), outstandingStatuses).Return([]entities.Installment{
		{
			LoanID: "L1", InstallmentNumber: 1, ClientCUIT: "20-1",
			DueDate:          ptr(dashboardNow.AddDate(0, 0, -45)),
			ExpectedAmount:   500,
			RemainingBalance: 500,
			Status:           entities.InstallmentStatusImpago,
		},
	}, nil)
	clients.EXPECT().List(gomock.Any()).Return(nil, nil)

	m, err := uc.Delinquency(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Buckets.Days31To60 != 500 || m.DelinquentClients != 1 {
		t.Fatalf("unexpected delinquency: %+v", m)
	}
}

func TestDashboardUseCase_Liquidity(t *testing.T) {
	uc, installments, _ := newDashboardUseCase(t)
	installments.EXPECT().ListByDueDateRange(gomock.Any(), dashboardNow, dashboardNow.AddDate(1, 0, 0)).Return([]entities.Installment{
		{LoanID: "L1", InstallmentNumber: 1, DueDate: ptr(dashboardNow.AddDate(0, 1, 0)), RemainingBalance: 250},
	}, nil)

	p, err := uc.Liquidity(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Total != 250 || len(p.Months) != 1 || p.Months[0].Month != "2024-07" {
		t.Fatalf("unexpected projection: %+v", p)
	}
}

func TestDashboardUseCase_RefreshClients(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		uc, _, clients := newDashboardUseCase(t)
		clients.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.RefreshClients(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, _, clients := newDashboardUseCase(t)
		clients.EXPECT().List(gomock.Any()).Return([]entities.Client{{CUIT: "20-1"}, {CUIT: "20-2"}}, nil)

		n, err := uc.RefreshClients(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Fatalf("expected 2 clients, got %d", n)
		}
		if _, ok := uc.snapshot().Lookup("20-2"); !ok {
			t.Fatalf("expected 20-2 in directory")
		}
	})
}
