package usecase

import (
	"context"
	"errors"
	"strings"

	"mutual_cartera/internal/domain/entities"
	"mutual_cartera/internal/usecase/interfaces"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidCUIT    = errors.New("invalid cuit")
)

// IClientUseCase exposes the client directory.
type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByCUIT(ctx context.Context, cuit string) (entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) GetByCUIT(ctx context.Context, cuit string) (entities.Client, error) {
	cuit = strings.TrimSpace(cuit)
	if cuit == "" {
		return entities.Client{}, ErrInvalidCUIT
	}

	c, err := u.repo.GetByCUIT(ctx, cuit)
	if err != nil {
		return entities.Client{}, err
	}
	if c.CUIT == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}
