package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryShare struct {
	Category    Category        `json:"category"`
	DisplayName string          `json:"displayName"`
	Amount      decimal.Decimal `json:"amount"`
	// 0-1, and 0 whenever total value created is 0
	ShareOfTotal   float64 `json:"shareOfTotal"`
	PercentOfTotal string  `json:"percentOfTotal"`
}

// ReportView is what gets rendered for a single engagement. It is rebuilt
// from the record on every request.
type ReportView struct {
	ID                  uuid.UUID       `json:"id"`
	OrganizationName    string          `json:"organizationName"`
	CorporateClientName string          `json:"corporateClientName"`
	TotalInvestment     decimal.Decimal `json:"totalInvestment"`
	TotalValueCreated   decimal.Decimal `json:"totalValueCreated"`
	SroiRatio           decimal.Decimal `json:"sroiRatio"`
	ValidationStatus    string          `json:"validationStatus"`
	ConfidencePercent   int             `json:"confidencePercent"`
	PeriodStart         time.Time       `json:"periodStart"`
	PeriodEnd           time.Time       `json:"periodEnd"`
	Breakdown           []CategoryShare `json:"breakdown"`
	BreakdownCoverage   float64         `json:"breakdownCoverage"`
}

func (r ReportView) ShareFor(c Category) (CategoryShare, bool) {
	for _, s := range r.Breakdown {
		if s.Category == c {
			return s, true
		}
	}
	return CategoryShare{}, false
}
