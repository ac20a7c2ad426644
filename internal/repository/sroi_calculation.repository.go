package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sroireport/internal/db/models/postgres/public/model"
	"sroireport/internal/db/models/postgres/public/table"
	"sroireport/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type SroiCalculationRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.SroiRecord, error)
}

type sroiCalculationRepositoryHandler struct {
	Db qrm.Queryable
}

func NewSroiCalculationRepository(db qrm.Queryable) SroiCalculationRepository {
	return sroiCalculationRepositoryHandler{Db: db}
}

// organizations is joined twice, so both sides need their own alias for
// qrm to tell the names apart
type sroiCalculationRow struct {
	model.SroiCalculations

	Organization    *model.Organizations `alias:"organization"`
	CorporateClient *model.Organizations `alias:"corporate_client"`
}

func (h sroiCalculationRepositoryHandler) Get(ctx context.Context, id uuid.UUID) (*domain.SroiRecord, error) {
	s := table.SroiCalculations
	organization := table.Organizations.AS("organization")
	corporateClient := table.Organizations.AS("corporate_client")

	query := postgres.SELECT(
		s.AllColumns,
		organization.ID,
		organization.Name,
		corporateClient.ID,
		corporateClient.Name,
	).FROM(
		s.LEFT_JOIN(
			organization, organization.ID.EQ(s.OrganizationID),
		).LEFT_JOIN(
			corporateClient, corporateClient.ID.EQ(s.CorporateClientID),
		),
	).WHERE(
		s.ID.EQ(postgres.UUID(id)),
	)

	result := sroiCalculationRow{}
	err := query.QueryContext(ctx, h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get sroi calculation %s: %w", id, err)
	}

	return sroiRecordFromRow(result)
}

func sroiRecordFromRow(row sroiCalculationRow) (*domain.SroiRecord, error) {
	breakdown, err := ParseValueBreakdown(row.ValueBreakdown)
	if err != nil {
		return nil, err
	}

	out := &domain.SroiRecord{
		ID:                row.ID,
		TotalInvestment:   row.TotalInvestment,
		TotalValueCreated: row.TotalValueCreated,
		SroiRatio:         row.SroiRatio,
		ConfidenceScore:   row.ConfidenceScore,
		ValidationStatus:  row.ValidationStatus,
		PeriodStart:       row.PeriodStart,
		PeriodEnd:         row.PeriodEnd,
		ValueBreakdown:    breakdown,
	}
	if row.Organization != nil {
		out.Organization = domain.OrganizationRef{Name: row.Organization.Name}
	}
	if row.CorporateClient != nil {
		out.CorporateClient = domain.OrganizationRef{Name: row.CorporateClient.Name}
	}

	return out, nil
}

// ParseValueBreakdown decodes the value_breakdown jsonb column. A null or
// empty column is an empty breakdown. Anything that isn't an object of
// {"value": number} entries is a malformed record.
func ParseValueBreakdown(raw *string) (domain.ValueBreakdown, error) {
	if raw == nil {
		return domain.ValueBreakdown{}, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" || trimmed == "null" {
		return domain.ValueBreakdown{}, nil
	}

	breakdown := domain.ValueBreakdown{}
	if err := json.Unmarshal([]byte(trimmed), &breakdown); err != nil {
		return nil, domain.NewValidationError(
			domain.MalformedBreakdown,
			"value_breakdown",
			"failed to decode value_breakdown: %s", err.Error(),
		)
	}

	return breakdown, nil
}
