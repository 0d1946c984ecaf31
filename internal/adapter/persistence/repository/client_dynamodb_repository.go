package repository

import (
	"context"
	"fmt"
	"time"

	"mutual_cartera/internal/domain/entities"
	"mutual_cartera/internal/infrastructure/logging"
	"mutual_cartera/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	CUIT      string `dynamodbav:"cuit"`
	FullName  string `dynamodbav:"full_name,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	BirthDate string `dynamodbav:"birth_date,omitempty"`
	Age       *int   `dynamodbav:"age,omitempty"`
	Gender    string `dynamodbav:"gender,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: cuit (string)
type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	logger    *logging.Logger
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tableName string, logger *logging.Logger) *ClientDynamoRepository {
	if tableName == "" {
		tableName = defaultClientsTableName
	}
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		logger:    logger.WithComponent("client-repository"),
	}
}

func (r *ClientDynamoRepository) UpsertBatch(ctx context.Context, clients []entities.Client) error {
	if len(clients) == 0 {
		return nil
	}
	if len(clients) > MaxTransactItems {
		return ErrBatchTooLarge
	}

	actions := make([]types.TransactWriteItem, 0, len(clients))
	for _, c := range clients {
		av, err := attributevalue.MarshalMap(toClientItem(c))
		if err != nil {
			return fmt.Errorf("marshal client %s: %w", c.CUIT, err)
		}
		key := map[string]types.AttributeValue{
			"cuit": &types.AttributeValueMemberS{Value: c.CUIT},
		}
		actions = append(actions, upsertAction(r.tableName, key, av))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: actions})
	return err
}

func (r *ClientDynamoRepository) GetByCUIT(ctx context.Context, cuit string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cuit": &types.AttributeValueMemberS{Value: cuit},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if out.Item == nil {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	var out []entities.Client
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []clientItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromClientItem(it))
		}
	}

	r.logger.Debug().Int("clients", len(out)).Msg("client directory scanned")
	return out, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		CUIT:      c.CUIT,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		BirthDate: formatTime(c.BirthDate),
		Age:       c.Age,
		Gender:    c.Gender,
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) entities.Client {
	c := entities.Client{
		CUIT:      it.CUIT,
		FullName:  it.FullName,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		BirthDate: parseTime(it.BirthDate),
		Age:       it.Age,
		Gender:    it.Gender,
	}
	if updated := parseTime(it.UpdatedAt); updated != nil {
		c.UpdatedAt = *updated
	}
	return c
}
