package calculator

import (
	"errors"
	"math"
	"testing"

	"sroireport/internal/domain"
	"sroireport/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newRecord(totalInvestment, totalValueCreated int64, breakdown domain.ValueBreakdown) domain.SroiRecord {
	return domain.SroiRecord{
		ID:                uuid.MustParse("00000000-2025-0001-0001-000000000001"),
		TotalInvestment:   util.DecimalPointer(decimal.NewFromInt(totalInvestment)),
		TotalValueCreated: util.DecimalPointer(decimal.NewFromInt(totalValueCreated)),
		SroiRatio:         decimal.NewFromFloat(4),
		ConfidenceScore:   decimal.NewFromFloat(0.85),
		ValidationStatus:  "validated",
		PeriodStart:       util.NewDate(2025, 1, 1),
		PeriodEnd:         util.NewDate(2025, 12, 31),
		ValueBreakdown:    breakdown,
		Organization:      domain.OrganizationRef{Name: "Community Food Bank"},
		CorporateClient:   domain.OrganizationRef{Name: "Acme Corp"},
	}
}

func value(i int64) domain.CategoryValue {
	return domain.CategoryValue{Value: util.DecimalPointer(decimal.NewFromInt(i))}
}

func TestComputeReport(t *testing.T) {
	t.Run("full breakdown", func(t *testing.T) {
		record := newRecord(50000, 200000, domain.ValueBreakdown{
			domain.CategoryEmployment:    value(80000),
			domain.CategoryFoodSecurity:  value(60000),
			domain.CategoryEnvironmental: value(40000),
			domain.CategoryEconomic:      value(20000),
		})

		out, err := ComputeReport(record)
		require.NoError(t, err)

		expected := []domain.CategoryShare{
			{Category: domain.CategoryEmployment, DisplayName: "Employment", Amount: decimal.NewFromInt(80000), ShareOfTotal: 0.4, PercentOfTotal: "40.0"},
			{Category: domain.CategoryFoodSecurity, DisplayName: "Food Security", Amount: decimal.NewFromInt(60000), ShareOfTotal: 0.3, PercentOfTotal: "30.0"},
			{Category: domain.CategoryEnvironmental, DisplayName: "Environmental", Amount: decimal.NewFromInt(40000), ShareOfTotal: 0.2, PercentOfTotal: "20.0"},
			{Category: domain.CategoryEconomic, DisplayName: "Economic", Amount: decimal.NewFromInt(20000), ShareOfTotal: 0.1, PercentOfTotal: "10.0"},
		}
		require.Equal(
			t,
			"",
			cmp.Diff(
				expected,
				out.Breakdown,
				cmp.Comparer(func(d1, d2 decimal.Decimal) bool {
					return d1.Equal(d2)
				}),
				cmp.Comparer(func(i, j float64) bool {
					return math.Abs(i-j) < 0.000001
				}),
			),
		)
		require.Equal(t, 85, out.ConfidencePercent)
		require.InDelta(t, 1.0, out.BreakdownCoverage, 0.000001)
		require.Equal(t, "Community Food Bank", out.OrganizationName)
		require.Equal(t, "Acme Corp", out.CorporateClientName)
		require.Equal(t, "validated", out.ValidationStatus)
		require.True(t, out.SroiRatio.Equal(decimal.NewFromInt(4)))
		require.Equal(t, record.PeriodStart, out.PeriodStart)
		require.Equal(t, record.PeriodEnd, out.PeriodEnd)
	})

	t.Run("employment share of 200000", func(t *testing.T) {
		out, err := ComputeReport(newRecord(50000, 200000, domain.ValueBreakdown{
			domain.CategoryEmployment: value(80000),
		}))
		require.NoError(t, err)

		share, ok := out.ShareFor(domain.CategoryEmployment)
		require.True(t, ok)
		require.Equal(t, 0.4, share.ShareOfTotal)
	})

	t.Run("missing categories are zero", func(t *testing.T) {
		out, err := ComputeReport(newRecord(50000, 200000, nil))
		require.NoError(t, err)

		require.Len(t, out.Breakdown, 4)
		for _, share := range out.Breakdown {
			require.True(t, share.Amount.IsZero(), share.Category)
			require.Equal(t, 0.0, share.ShareOfTotal, share.Category)
			require.Equal(t, "0.0", share.PercentOfTotal)
		}
		require.Equal(t, 0.0, out.BreakdownCoverage)
	})

	t.Run("absent and explicit zero are identical", func(t *testing.T) {
		absent, err := ComputeReport(newRecord(50000, 200000, domain.ValueBreakdown{}))
		require.NoError(t, err)
		explicit, err := ComputeReport(newRecord(50000, 200000, domain.ValueBreakdown{
			domain.CategoryEmployment:    value(0),
			domain.CategoryFoodSecurity:  value(0),
			domain.CategoryEnvironmental: value(0),
			domain.CategoryEconomic:      {},
		}))
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(absent.Breakdown, explicit.Breakdown, cmp.Comparer(func(d1, d2 decimal.Decimal) bool {
				return d1.Equal(d2)
			})),
		)
	})

	t.Run("zero total value never divides", func(t *testing.T) {
		out, err := ComputeReport(newRecord(50000, 0, domain.ValueBreakdown{
			domain.CategoryEmployment: value(1000),
			domain.CategoryEconomic:   value(5),
		}))
		require.NoError(t, err)

		for _, share := range out.Breakdown {
			require.Equal(t, 0.0, share.ShareOfTotal)
		}
		employment, _ := out.ShareFor(domain.CategoryEmployment)
		require.True(t, employment.Amount.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("shares times total equal amounts", func(t *testing.T) {
		record := newRecord(33333, 777777, domain.ValueBreakdown{
			domain.CategoryEmployment:    value(123456),
			domain.CategoryFoodSecurity:  value(98765),
			domain.CategoryEnvironmental: value(4321),
			domain.CategoryEconomic:      value(333333),
		})
		out, err := ComputeReport(record)
		require.NoError(t, err)

		shareSum := 0.0
		amountSum := decimal.Zero
		for _, share := range out.Breakdown {
			shareSum += share.ShareOfTotal
			amountSum = amountSum.Add(share.Amount)
		}
		require.InDelta(t, amountSum.InexactFloat64(), shareSum*777777, 0.001)
	})

	t.Run("missing total investment", func(t *testing.T) {
		record := newRecord(50000, 200000, nil)
		record.TotalInvestment = nil

		_, err := ComputeReport(record)
		require.ErrorIs(t, err, domain.ErrMissingTotals)
	})

	t.Run("missing total value created", func(t *testing.T) {
		record := newRecord(50000, 200000, nil)
		record.TotalValueCreated = nil

		_, err := ComputeReport(record)
		require.ErrorIs(t, err, domain.ErrMissingTotals)
	})

	t.Run("negative totals", func(t *testing.T) {
		_, err := ComputeReport(newRecord(-1, 200000, nil))
		require.ErrorIs(t, err, domain.ErrNegativeTotal)

		_, err = ComputeReport(newRecord(50000, -200000, nil))
		require.ErrorIs(t, err, domain.ErrNegativeTotal)
	})

	t.Run("negative category value", func(t *testing.T) {
		_, err := ComputeReport(newRecord(50000, 200000, domain.ValueBreakdown{
			domain.CategoryEnvironmental: value(-10),
		}))
		require.ErrorIs(t, err, domain.ErrMalformedBreakdown)

		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		require.Equal(t, "value_breakdown.environmental.value", validationErr.Field)
	})

	t.Run("confidence out of range", func(t *testing.T) {
		for _, score := range []float64{1.5, -0.1} {
			record := newRecord(50000, 200000, nil)
			record.ConfidenceScore = decimal.NewFromFloat(score)

			_, err := ComputeReport(record)
			require.ErrorIs(t, err, domain.ErrConfidenceOutOfRange)
		}
	})

	t.Run("inverted period", func(t *testing.T) {
		record := newRecord(50000, 200000, nil)
		record.PeriodStart, record.PeriodEnd = record.PeriodEnd, record.PeriodStart

		_, err := ComputeReport(record)
		require.ErrorIs(t, err, domain.ErrInvalidPeriod)
	})

	t.Run("totals are checked before confidence", func(t *testing.T) {
		record := newRecord(50000, 200000, nil)
		record.TotalInvestment = nil
		record.ConfidenceScore = decimal.NewFromFloat(2)

		_, err := ComputeReport(record)
		require.ErrorIs(t, err, domain.ErrMissingTotals)
	})
}

func TestConfidencePercent(t *testing.T) {
	tests := []struct {
		score string
		want  int
	}{
		{"0", 0},
		{"1", 100},
		{"0.85", 85},
		{"0.285", 29},
		{"0.005", 1},
		{"0.004", 0},
		{"0.999", 100},
	}
	for _, tt := range tests {
		t.Run(tt.score, func(t *testing.T) {
			got, err := ConfidencePercent(decimal.RequireFromString(tt.score))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRatioDeviation(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		record := newRecord(50000, 200000, nil)
		deviation, ok := RatioDeviation(record)
		require.True(t, ok)
		require.True(t, deviation.IsZero())
	})
	t.Run("zero investment", func(t *testing.T) {
		_, ok := RatioDeviation(newRecord(0, 200000, nil))
		require.False(t, ok)
	})
}
