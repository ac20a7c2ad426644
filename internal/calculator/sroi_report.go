package calculator

import (
	"fmt"

	"sroireport/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// ComputeReport turns a raw sroi record into the view that gets rendered.
// It has no side effects; any problem with the record comes back as a
// *domain.ValidationError and nothing is recovered here.
func ComputeReport(record domain.SroiRecord) (*domain.ReportView, error) {
	if err := validateTotals(record); err != nil {
		return nil, err
	}
	totalValueCreated := *record.TotalValueCreated

	breakdown := make([]domain.CategoryShare, 0, len(domain.Categories()))
	shares := []float64{}
	for _, category := range domain.Categories() {
		amount := record.ValueBreakdown.AmountFor(category)
		if amount.IsNegative() {
			return nil, domain.NewValidationError(
				domain.MalformedBreakdown,
				fmt.Sprintf("value_breakdown.%s.value", category),
				"category value must be non-negative, got %s", amount.String(),
			)
		}

		share := ShareOfTotal(amount, totalValueCreated)
		breakdown = append(breakdown, domain.CategoryShare{
			Category:       category,
			DisplayName:    category.DisplayName(),
			Amount:         amount,
			ShareOfTotal:   share.InexactFloat64(),
			PercentOfTotal: share.Mul(hundred).StringFixed(1),
		})
		shares = append(shares, share.InexactFloat64())
	}

	confidencePercent, err := ConfidencePercent(record.ConfidenceScore)
	if err != nil {
		return nil, err
	}

	if record.PeriodStart.After(record.PeriodEnd) {
		return nil, domain.NewValidationError(
			domain.InvalidPeriod,
			"period_start",
			"period_start %s is after period_end %s",
			record.PeriodStart.Format("2006-01-02"),
			record.PeriodEnd.Format("2006-01-02"),
		)
	}

	coverage, err := stats.Sum(shares)
	if err != nil {
		return nil, fmt.Errorf("failed to sum category shares: %w", err)
	}

	return &domain.ReportView{
		ID:                  record.ID,
		OrganizationName:    record.Organization.Name,
		CorporateClientName: record.CorporateClient.Name,
		TotalInvestment:     *record.TotalInvestment,
		TotalValueCreated:   totalValueCreated,
		SroiRatio:           record.SroiRatio,
		ValidationStatus:    record.ValidationStatus,
		ConfidencePercent:   confidencePercent,
		PeriodStart:         record.PeriodStart,
		PeriodEnd:           record.PeriodEnd,
		Breakdown:           breakdown,
		BreakdownCoverage:   coverage,
	}, nil
}

func validateTotals(record domain.SroiRecord) error {
	if record.TotalInvestment == nil {
		return domain.NewValidationError(domain.MissingTotals, "total_investment", "total_investment is required")
	}
	if record.TotalValueCreated == nil {
		return domain.NewValidationError(domain.MissingTotals, "total_value_created", "total_value_created is required")
	}
	if record.TotalInvestment.IsNegative() {
		return domain.NewValidationError(domain.NegativeTotal, "total_investment", "got %s", record.TotalInvestment.String())
	}
	if record.TotalValueCreated.IsNegative() {
		return domain.NewValidationError(domain.NegativeTotal, "total_value_created", "got %s", record.TotalValueCreated.String())
	}
	return nil
}

// ShareOfTotal is amount / total, or zero when there is no total to divide
// by. Zero here is a display policy, not arithmetic.
func ShareOfTotal(amount, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return amount.Div(total)
}

// ConfidencePercent rounds half-up on the decimal value so 0.285 lands on
// 29 rather than whatever the float would do.
func ConfidencePercent(score decimal.Decimal) (int, error) {
	if score.IsNegative() || score.GreaterThan(one) {
		return 0, domain.NewValidationError(
			domain.ConfidenceOutOfRange,
			"confidence_score",
			"confidence_score must be within [0, 1], got %s", score.String(),
		)
	}
	return int(score.Mul(hundred).Round(0).IntPart()), nil
}

// RatioDeviation compares the stored sroi_ratio against value / investment.
// The stored ratio is still what gets displayed; this only exists so
// callers can flag drift.
func RatioDeviation(record domain.SroiRecord) (decimal.Decimal, bool) {
	if record.TotalInvestment == nil || record.TotalValueCreated == nil || !record.TotalInvestment.IsPositive() {
		return decimal.Zero, false
	}
	expected := record.TotalValueCreated.Div(*record.TotalInvestment)
	return record.SroiRatio.Sub(expected).Abs(), true
}
