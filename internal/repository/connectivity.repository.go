package repository

import (
	"context"
	"errors"
	"fmt"

	"sroireport/internal/domain"
	"sroireport/pkg/supabase"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/lib/pq"
)

// ConnectivityRepository issues the smallest possible read against the
// backing store. A nil error means the store answered. Structured store
// errors come back as *domain.ProbeError; anything else is returned as-is.
type ConnectivityRepository interface {
	ProbeRead(ctx context.Context) error
}

type postgresConnectivityRepositoryHandler struct {
	Db    qrm.Queryable
	Table string
}

func NewPostgresConnectivityRepository(db qrm.Queryable, probeTable string) ConnectivityRepository {
	return postgresConnectivityRepositoryHandler{
		Db:    db,
		Table: probeTable,
	}
}

func (h postgresConnectivityRepositoryHandler) ProbeRead(ctx context.Context) error {
	query := fmt.Sprintf("SELECT id FROM %s LIMIT 1", pq.QuoteIdentifier(h.Table))
	rows, err := h.Db.QueryContext(ctx, query)
	if err != nil {
		return probeErrorFromPq(err)
	}
	defer rows.Close()

	for rows.Next() {
	}
	if err := rows.Err(); err != nil {
		return probeErrorFromPq(err)
	}

	return nil
}

func probeErrorFromPq(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &domain.ProbeError{
			Code:    string(pqErr.Code),
			Message: pqErr.Message,
		}
	}
	return err
}

type supabaseConnectivityRepositoryHandler struct {
	Client *supabase.Client
	Table  string
}

func NewSupabaseConnectivityRepository(client *supabase.Client, probeTable string) ConnectivityRepository {
	return supabaseConnectivityRepositoryHandler{
		Client: client,
		Table:  probeTable,
	}
}

func (h supabaseConnectivityRepositoryHandler) ProbeRead(ctx context.Context) error {
	_, err := h.Client.Select(ctx, h.Table, "id", 1)
	if err == nil {
		return nil
	}

	var restErr *supabase.Error
	if errors.As(err, &restErr) {
		return &domain.ProbeError{
			Code:    restErr.Code,
			Message: restErr.Message,
		}
	}
	return err
}
