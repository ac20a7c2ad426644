package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"sroireport/api"
	"sroireport/internal/repository"
	"sroireport/internal/service"
	"sroireport/internal/util"
	"sroireport/pkg/supabase"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	defaultReportID, err := uuid.Parse(secrets.Report.DefaultID)
	if err != nil {
		return nil, fmt.Errorf("invalid report.defaultId %q: %w", secrets.Report.DefaultID, err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	sroiCalculationRepository := repository.NewSroiCalculationRepository(dbConn)
	apiRequestRepository := repository.ApiRequestRepositoryHandler{}

	var connectivityRepository repository.ConnectivityRepository
	switch secrets.Probe.Backend {
	case util.ProbeBackendSupabase:
		connectivityRepository = repository.NewSupabaseConnectivityRepository(
			supabase.NewClient(secrets.Supabase.Url, secrets.Supabase.AnonKey),
			secrets.Probe.Table,
		)
	default:
		connectivityRepository = repository.NewPostgresConnectivityRepository(dbConn, secrets.Probe.Table)
	}

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		ReportService:        service.NewReportService(sroiCalculationRepository),
		ConnectivityService:  service.NewConnectivityService(connectivityRepository, secrets.Probe.Timeout),
		ApiRequestRepository: apiRequestRepository,
		Authenticator:        api.NewSupabaseAuthenticator(secrets.Supabase.JwtSecret),
		DefaultReportID:      defaultReportID,
		LoginPath:            secrets.Api.LoginPath,
		ProjectUrl:           secrets.Supabase.Url,
	}

	return apiHandler, nil
}

// Port is where cmd/api listens
func Port() (int, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return 0, fmt.Errorf("failed to load secrets: %w", err)
	}
	return secrets.Api.Port, nil
}
