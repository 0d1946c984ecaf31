package usecase

import (
	"context"
	"errors"
	"testing"

	"mutual_cartera/internal/domain/entities"
	mock_interfaces "mutual_cartera/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_GetByCUIT(t *testing.T) {
	t.Run("invalid cuit", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.GetByCUIT(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCUIT) {
			t.Fatalf("expected ErrInvalidCUIT, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByCUIT(gomock.Any(), "20-1").Return(entities.Client{}, errors.New("db"))

		_, err := uc.GetByCUIT(context.Background(), "20-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByCUIT(gomock.Any(), "20-1").Return(entities.Client{}, nil)

		_, err := uc.GetByCUIT(context.Background(), "20-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByCUIT(gomock.Any(), "20-1").Return(entities.Client{CUIT: "20-1", FullName: "Ana"}, nil)

		c, err := uc.GetByCUIT(context.Background(), " 20-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.FullName != "Ana" {
			t.Fatalf("unexpected client: %+v", c)
		}
	})
}

func TestClientUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewClientUseCase(repo)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Client{{CUIT: "20-1"}}, nil)

	clients, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
}
