package repository

import (
	"fmt"

	"sroireport/internal/db/models/postgres/public/model"
	"sroireport/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ApiRequestRepository interface {
	Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.Executable, ar model.APIRequest) error
}

type ApiRequestRepositoryHandler struct{}

func (h ApiRequestRepositoryHandler) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	if ar.RequestID == uuid.Nil {
		ar.RequestID = uuid.New()
	}

	query := table.APIRequest.
		INSERT(table.APIRequest.AllColumns).
		MODEL(ar).
		RETURNING(table.APIRequest.AllColumns)

	out := &model.APIRequest{}
	err := query.Query(db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert API request: %w", err)
	}

	return out, nil
}

// Update fills in what's only known once the handler has run, including the
// user the auth gate resolved.
func (h ApiRequestRepositoryHandler) Update(db qrm.Executable, ar model.APIRequest) error {
	t := table.APIRequest
	query := t.
		UPDATE(t.UserID, t.DurationMs, t.StatusCode, t.ResponseBody).
		MODEL(ar).
		WHERE(t.RequestID.EQ(postgres.UUID(ar.RequestID)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update API request %s: %w", ar.RequestID, err)
	}

	return nil
}
