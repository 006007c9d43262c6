// Package salary computes the net pay persisted on a directory entry.
package salary

import (
	"github.com/shopspring/decimal"

	"staffdir-system/internal/apperr"
	"staffdir-system/internal/database/models"
)

var hundred = decimal.NewFromInt(100)

// Net applies a company's percentage adjustments to a base salary:
//
//	net = base * (1 + (ta + da + hra - pf) / 100)
//
// The result is rendered with two decimal places, matching the storage
// column. Returns apperr.ErrInvalidSalary when base does not parse.
func Net(base string, company models.Company) (string, error) {
	baseSalary, err := decimal.NewFromString(base)
	if err != nil {
		return "", apperr.ErrInvalidSalary
	}

	ta, _ := decimal.NewFromString(company.TA)
	da, _ := decimal.NewFromString(company.DA)
	hra, _ := decimal.NewFromString(company.HRA)
	pf, _ := decimal.NewFromString(company.PF)

	adjustment := ta.Add(da).Add(hra).Sub(pf).Div(hundred)
	net := baseSalary.Mul(decimal.NewFromInt(1).Add(adjustment))

	return net.StringFixed(2), nil
}
