package ingest

import (
	"math"
	"time"

	"mutual_cartera/internal/domain/entities"
)

// DeriveStatus classifies an installment from its amounts.
func DeriveStatus(paid, remaining float64) entities.InstallmentStatus {
	switch {
	case remaining == 0:
		return entities.InstallmentStatusPagado
	case paid > 0:
		return entities.InstallmentStatusParcial
	default:
		return entities.InstallmentStatusImpago
	}
}

// DelayDays returns the days an installment was (or still is) late. Paid
// installments measure against the payment date; open ones against today.
func DelayDays(status entities.InstallmentStatus, due, payment *time.Time, today time.Time) int {
	if due == nil {
		return 0
	}
	if status == entities.InstallmentStatusPagado {
		if payment == nil {
			return 0
		}
		return ceilDays(payment.Sub(*due))
	}
	if due.Before(today) {
		return ceilDays(today.Sub(*due))
	}
	return 0
}

func ceilDays(d time.Duration) int {
	days := int(math.Ceil(d.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// AgeAt returns the whole years elapsed between birth and today.
func AgeAt(birth, today time.Time) int {
	birth = birth.In(today.Location())
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
