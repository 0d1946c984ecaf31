package entities

import (
	"fmt"
	"time"
)

// InstallmentStatus is derived from amounts at ingestion time.
//
// The stored value is authoritative for filtering (store queries by status),
// while the amounts are authoritative for sums.
type InstallmentStatus string

const (
	InstallmentStatusPagado  InstallmentStatus = "PAGADO"
	InstallmentStatusParcial InstallmentStatus = "PARCIAL"
	InstallmentStatusImpago  InstallmentStatus = "IMPAGO"
)

// Installment is one scheduled repayment of a loan.
//
// Storage model (DynamoDB):
//   - PK: id ("{loan_id}_{installment_number}")
//   - GSI1 (due_month-index): due_month + due_date
//   - GSI2 (status-index): status
//
// ClientName and ClientBirthDate are denormalized from the import row and are
// only used when the client directory has no entry for ClientCUIT.
type Installment struct {
	LoanID            string            `json:"loan_id"`
	InstallmentNumber int               `json:"installment_number"`
	ClientCUIT        string            `json:"client_cuit"`
	ProductLine       string            `json:"product_line"`
	Provider          string            `json:"provider"`
	IssueDate         *time.Time        `json:"issue_date,omitempty"`
	DueDate           *time.Time        `json:"due_date,omitempty"`
	PaymentDate       *time.Time        `json:"payment_date,omitempty"`
	ExpectedAmount    float64           `json:"expected_amount"`
	PaidAmount        float64           `json:"paid_amount"`
	RemainingBalance  float64           `json:"remaining_balance"`
	RefinancedAmount  float64           `json:"refinanced_amount"`
	DisbursedAmount   float64           `json:"disbursed_amount"`
	Status            InstallmentStatus `json:"status"`
	DaysDelayed       int               `json:"days_delayed"`
	ClientName        string            `json:"client_name,omitempty"`
	ClientBirthDate   *time.Time        `json:"client_birth_date,omitempty"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// InstallmentKey builds the natural key used for idempotent upserts.
func InstallmentKey(loanID string, number int) string {
	return fmt.Sprintf("%s_%d", loanID, number)
}

// Key returns the natural key of the installment.
func (i Installment) Key() string {
	return InstallmentKey(i.LoanID, i.InstallmentNumber)
}
