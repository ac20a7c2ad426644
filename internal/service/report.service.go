package service

import (
	"context"
	"errors"

	"sroireport/internal/calculator"
	"sroireport/internal/domain"
	"sroireport/internal/logger"
	"sroireport/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// past this the stored ratio is logged as drifting from value / investment
var ratioDeviationTolerance = decimal.RequireFromString("0.01")

// ReportService loads a single sroi calculation and turns it into the view
// the dashboard renders. Nothing is cached; every call hits the store.
type ReportService interface {
	GetReport(ctx context.Context, id uuid.UUID) (*domain.ReportView, error)
}

type reportServiceHandler struct {
	SroiCalculationRepository repository.SroiCalculationRepository
}

func NewReportService(sroiCalculationRepository repository.SroiCalculationRepository) ReportService {
	return reportServiceHandler{
		SroiCalculationRepository: sroiCalculationRepository,
	}
}

func (h reportServiceHandler) GetReport(ctx context.Context, id uuid.UUID) (*domain.ReportView, error) {
	lg := logger.FromContext(ctx).With("sroiCalculationID", id.String())

	record, err := h.SroiCalculationRepository.Get(ctx, id)
	if err != nil {
		// a breakdown that can't be decoded is a bad record, not a failed fetch
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return nil, err
		}
		return nil, &domain.FetchError{ID: id, Err: err}
	}

	if deviation, ok := calculator.RatioDeviation(*record); ok && deviation.GreaterThan(ratioDeviationTolerance) {
		lg.Warnw(
			"stored sroi_ratio does not match total_value_created / total_investment",
			"sroiRatio", record.SroiRatio.String(),
			"deviation", deviation.StringFixed(4),
		)
	}

	view, err := calculator.ComputeReport(*record)
	if err != nil {
		lg.Warnw("failed to compute report", "error", err.Error())
		return nil, err
	}

	return view, nil
}
