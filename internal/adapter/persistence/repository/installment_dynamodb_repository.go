package repository

import (
	"context"
	"errors"
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

const (
	defaultInstallmentsTableName = "installments"

	DueMonthIndexName = "due_month-index"
	StatusIndexName   = "status-index"
)

var ErrBatchTooLarge = fmt.Errorf("batch exceeds %d items", MaxTransactItems)

type installmentItem struct {
	ID                string  `dynamodbav:"id"`
	LoanID            string  `dynamodbav:"loan_id"`
	InstallmentNumber int     `dynamodbav:"installment_number"`
	ClientCUIT        string  `dynamodbav:"client_cuit"`
	ProductLine       string  `dynamodbav:"product_line"`
	Provider          string  `dynamodbav:"provider"`
	IssueDate         string  `dynamodbav:"issue_date,omitempty"`
	DueDate           string  `dynamodbav:"due_date,omitempty"`
	DueMonth          string  `dynamodbav:"due_month,omitempty"`
	PaymentDate       string  `dynamodbav:"payment_date,omitempty"`
	ExpectedAmount    float64 `dynamodbav:"expected_amount"`
	PaidAmount        float64 `dynamodbav:"paid_amount"`
	RemainingBalance  float64 `dynamodbav:"remaining_balance"`
	RefinancedAmount  float64 `dynamodbav:"refinanced_amount"`
	DisbursedAmount   float64 `dynamodbav:"disbursed_amount"`
	Status            string  `dynamodbav:"status"`
	DaysDelayed       int     `dynamodbav:"days_delayed"`
	ClientName        string  `dynamodbav:"client_name,omitempty"`
	ClientBirthDate   string  `dynamodbav:"client_birth_date,omitempty"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// InstallmentDynamoRepository persists Installment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, "{loan_id}_{installment_number}")
//   - GSI due_month-index: PK due_month ("2006-01", UTC), SK due_date
//   - GSI status-index: PK status
//
// Writes are Update actions so re-importing a row overwrites the fields it
// carries and keeps the rest.
type InstallmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	logger    *logging.Logger
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb DynamoAPI, tableName string, logger *logging.Logger) *InstallmentDynamoRepository {
	if tableName == "" {
		tableName = defaultInstallmentsTableName
	}
	return &InstallmentDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		logger:    logger.WithComponent("installment-repository"),
	}
}

func (r *InstallmentDynamoRepository) UpsertBatch(ctx context.Context, items []entities.Installment) error {
	if len(items) == 0 {
		return nil
	}
	if len(items) > MaxTransactItems {
		return ErrBatchTooLarge
	}

	actions := make([]types.TransactWriteItem, 0, len(items))
	for _, inst := range items {
		av, err := attributevalue.MarshalMap(toInstallmentItem(inst))
		if err != nil {
			return fmt.Errorf("marshal installment %s: %w", inst.Key(), err)
		}
		key := map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: inst.Key()},
		}
		actions = append(actions, upsertAction(r.tableName, key, av))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: actions})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			r.logger.Warn().Int("items", len(items)).Msg("installment transaction cancelled")
		}
		return err
	}
	return nil
}

// ListByDueDateRange queries due_month-index once per calendar month touched
// by [start, end].
func (r *InstallmentDynamoRepository) ListByDueDateRange(ctx context.Context, start, end time.Time) ([]entities.Installment, error) {
	start, end = start.UTC(), end.UTC()
	if end.Before(start) {
		return nil, nil
	}

	var out []entities.Installment
	from, to := start.Format(dueDateLayout), end.Format(dueDateLayout)
	for month := firstOfMonth(start); !month.After(end); month = month.AddDate(0, 1, 0) {
		input := &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(DueMonthIndexName),
			KeyConditionExpression: aws.String("#due_month = :month AND #due_date BETWEEN :from AND :to"),
			ExpressionAttributeNames: mergeNames(
				map[string]string{"#due_month": "due_month"},
				map[string]string{"#due_date": "due_date"},
			),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":month": &types.AttributeValueMemberS{Value: month.Format("2006-01")},
				":from":  &types.AttributeValueMemberS{Value: from},
				":to":    &types.AttributeValueMemberS{Value: to},
			},
		}
		items, err := r.query(ctx, input)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}

	r.logger.Debug().
		Time("start", start).
		Time("end", end).
		Int("items", len(out)).
		Msg("installments loaded by due date")
	return out, nil
}

func (r *InstallmentDynamoRepository) ListByStatus(ctx context.Context, statuses []entities.InstallmentStatus) ([]entities.Installment, error) {
	var out []entities.Installment
	for _, status := range statuses {
		items, err := r.query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			IndexName:                aws.String(StatusIndexName),
			KeyConditionExpression:   aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{"#status": "status"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func (r *InstallmentDynamoRepository) query(ctx context.Context, input *dynamodb.QueryInput) ([]entities.Installment, error) {
	var out []entities.Installment
	p := dynamodb.NewQueryPaginator(r.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []installmentItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromInstallmentItem(it))
		}
	}
	return out, nil
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func toInstallmentItem(i entities.Installment) installmentItem {
	it := installmentItem{
		ID:                i.Key(),
		LoanID:            i.LoanID,
		InstallmentNumber: i.InstallmentNumber,
		ClientCUIT:        i.ClientCUIT,
		ProductLine:       i.ProductLine,
		Provider:          i.Provider,
		IssueDate:         formatTime(i.IssueDate),
		PaymentDate:       formatTime(i.PaymentDate),
		ExpectedAmount:    i.ExpectedAmount,
		PaidAmount:        i.PaidAmount,
		RemainingBalance:  i.RemainingBalance,
		RefinancedAmount:  i.RefinancedAmount,
		DisbursedAmount:   i.DisbursedAmount,
		Status:            string(i.Status),
		DaysDelayed:       i.DaysDelayed,
		ClientName:        i.ClientName,
		ClientBirthDate:   formatTime(i.ClientBirthDate),
		UpdatedAt:         i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if i.DueDate != nil {
		due := i.DueDate.UTC()
		it.DueDate = due.Format(dueDateLayout)
		it.DueMonth = due.Format("2006-01")
	}
	return it
}

func fromInstallmentItem(it installmentItem) entities.Installment {
	inst := entities.Installment{
		LoanID:            it.LoanID,
		InstallmentNumber: it.InstallmentNumber,
		ClientCUIT:        it.ClientCUIT,
		ProductLine:       it.ProductLine,
		Provider:          it.Provider,
		IssueDate:         parseTime(it.IssueDate),
		PaymentDate:       parseTime(it.PaymentDate),
		ExpectedAmount:    it.ExpectedAmount,
		PaidAmount:        it.PaidAmount,
		RemainingBalance:  it.RemainingBalance,
		RefinancedAmount:  it.RefinancedAmount,
		DisbursedAmount:   it.DisbursedAmount,
		Status:            entities.InstallmentStatus(it.Status),
		DaysDelayed:       it.DaysDelayed,
		ClientName:        it.ClientName,
		ClientBirthDate:   parseTime(it.ClientBirthDate),
	}
	if it.DueDate != "" {
		if due, err := time.Parse(dueDateLayout, it.DueDate); err == nil {
			inst.DueDate = &due
		}
	}
	if updated := parseTime(it.UpdatedAt); updated != nil {
		inst.UpdatedAt = *updated
	}
	return inst
}
