package ingest

import "strings"

// RawRow is one spreadsheet row keyed by header text. Numeric cells carry their
// raw value ("45306" for a date serial, "1500.5" for an amount).
type RawRow map[string]string

type field int

const (
	fieldLoanID field = iota
	fieldInstallmentNumber
	fieldCUIT
	fieldExpectedAmount
	fieldPaidAmount
	fieldRemainingBalance
	fieldDueDate
	fieldPaymentDate
	fieldIssueDate
	fieldProvider
	fieldProductLine
	fieldRefinancedAmount
	fieldDisbursedAmount
	fieldBirthDate
	fieldFullName
	fieldEmail
	fieldPhone
	fieldAddress
	fieldGender
)

// fieldAliases lists the accepted column headers per field, highest priority first.
var fieldAliases = map[field][]string{
	fieldLoanID:            {"Numero", "numero", "LoanId"},
	fieldInstallmentNumber: {"Nro Cuota", "nro_cuota", "installmentNumber"},
	fieldCUIT:              {"CUIT", "cuit"},
	fieldExpectedAmount:    {"Monto Total", "expectedAmount"},
	fieldPaidAmount:        {"Total Pago", "paidAmount"},
	fieldRemainingBalance:  {"Saldo Cuota", "remainingBalance"},
	fieldDueDate:           {"Fecha", "dueDate"},
	fieldPaymentDate:       {"Fecha Cobro", "paymentDate"},
	fieldIssueDate:         {"Fecha Emision", "issueDate"},
	fieldProvider:          {"Proveedor", "provider"},
	fieldProductLine:       {"Linea Prestamo", "productLine"},
	fieldRefinancedAmount:  {"Monto Refinanciado", "refinancedAmount"},
	fieldDisbursedAmount:   {"Monto Desembolsado", "Capital", "disbursedAmount"},
	fieldBirthDate:         {"Fecha De Nacimiento", "Fecha Nacimiento", "FECHA NACIMIENTO", "birthDate"},
	fieldFullName:          {"Nombre Completo", "Nombre y Apellido", "FullName", "fullName", "nombre", "CLIENTE"},
	fieldEmail:             {"Email", "email"},
	fieldPhone:             {"Celular", "phone"},
	fieldAddress:           {"Direccion", "address"},
	fieldGender:            {"Sexo", "gender"},
}

// lookup returns the first non-empty value among the aliases of f.
func (r RawRow) lookup(f field) string {
	for _, alias := range fieldAliases[f] {
		if v := strings.TrimSpace(r[alias]); v != "" {
			return v
		}
	}
	return ""
}

// rowFields is a RawRow with every alias resolved.
type rowFields struct {
	loanID            string
	installmentNumber string
	cuit              string
	expectedAmount    string
	paidAmount        string
	remainingBalance  string
	dueDate           string
	paymentDate       string
	issueDate         string
	provider          string
	productLine       string
	refinancedAmount  string
	disbursedAmount   string
	birthDate         string
	fullName          string
	email             string
	phone             string
	address           string
	gender            string
}

func resolveFields(r RawRow) rowFields {
	return rowFields{
		loanID:            r.lookup(fieldLoanID),
		installmentNumber: r.lookup(fieldInstallmentNumber),
		cuit:              r.lookup(fieldCUIT),
		expectedAmount:    r.lookup(fieldExpectedAmount),
		paidAmount:        r.lookup(fieldPaidAmount),
		remainingBalance:  r.lookup(fieldRemainingBalance),
		dueDate:           r.lookup(fieldDueDate),
		paymentDate:       r.lookup(fieldPaymentDate),
		issueDate:         r.lookup(fieldIssueDate),
		provider:          r.lookup(fieldProvider),
		productLine:       r.lookup(fieldProductLine),
		refinancedAmount:  r.lookup(fieldRefinancedAmount),
		disbursedAmount:   r.lookup(fieldDisbursedAmount),
		birthDate:         r.lookup(fieldBirthDate),
		fullName:          r.lookup(fieldFullName),
		email:             r.lookup(fieldEmail),
		phone:             r.lookup(fieldPhone),
		address:           r.lookup(fieldAddress),
		gender:            r.lookup(fieldGender),
	}
}
