package interfaces

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/client_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"mutual_cartera/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// GetByCUIT returns a zero Client (empty CUIT) when nothing is stored.
type IClientRepository interface {
	UpsertBatch(ctx context.Context, clients []entities.Client) error
	GetByCUIT(ctx context.Context, cuit string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}
