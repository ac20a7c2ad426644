package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryEmployment    Category = "employment"
	CategoryFoodSecurity  Category = "food_security"
	CategoryEnvironmental Category = "environmental"
	CategoryEconomic      Category = "economic"
)

// Categories returns every value category in display order. The order
// is part of the report contract, so callers should iterate this rather
// than the breakdown map.
func Categories() []Category {
	return []Category{
		CategoryEmployment,
		CategoryFoodSecurity,
		CategoryEnvironmental,
		CategoryEconomic,
	}
}

func (c Category) DisplayName() string {
	switch c {
	case CategoryEmployment:
		return "Employment"
	case CategoryFoodSecurity:
		return "Food Security"
	case CategoryEnvironmental:
		return "Environmental"
	case CategoryEconomic:
		return "Economic"
	}
	return string(c)
}

// CategoryValue is one entry of the value_breakdown json column. Entries
// may carry other keys upstream; only value is read here.
type CategoryValue struct {
	Value *decimal.Decimal `json:"value"`
}

type ValueBreakdown map[Category]CategoryValue

var zeroAmount = decimal.Zero

// noValueRecorded is what Lookup hands back for a category that isn't in
// the breakdown at all
var noValueRecorded = CategoryValue{Value: &zeroAmount}

// Lookup returns the entry for c, or the no-value sentinel when the
// category was never recorded.
func (b ValueBreakdown) Lookup(c Category) CategoryValue {
	entry, ok := b[c]
	if !ok {
		return noValueRecorded
	}
	return entry
}

// AmountFor treats a missing category, and a present one without a value,
// exactly like an explicit zero.
func (b ValueBreakdown) AmountFor(c Category) decimal.Decimal {
	entry := b.Lookup(c)
	if entry.Value == nil {
		return decimal.Zero
	}
	return *entry.Value
}

type OrganizationRef struct {
	Name string `json:"name"`
}

// SroiRecord is a single precomputed sroi_calculations row along with the
// names of both organizations involved.
type SroiRecord struct {
	ID                uuid.UUID
	TotalInvestment   *decimal.Decimal
	TotalValueCreated *decimal.Decimal
	SroiRatio         decimal.Decimal
	ConfidenceScore   decimal.Decimal
	ValidationStatus  string
	PeriodStart       time.Time
	PeriodEnd         time.Time
	ValueBreakdown    ValueBreakdown
	Organization      OrganizationRef
	CorporateClient   OrganizationRef
}
