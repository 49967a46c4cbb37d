package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/ihl-standings/internal/config"
	"github.com/riskibarqy/ihl-standings/internal/domain/team"
	"github.com/riskibarqy/ihl-standings/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ihl-standings/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/ihl-standings/internal/interfaces/function"
	"github.com/riskibarqy/ihl-standings/internal/interfaces/httpapi"
	"github.com/riskibarqy/ihl-standings/internal/platform/id"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
	"github.com/riskibarqy/ihl-standings/internal/usecase"
)

// NewTeamOpener picks the team storage named by APP_STORAGE.
func NewTeamOpener(cfg config.Config) (team.Opener, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		return postgres.NewOpener(config.DatabaseURL, cfg.DBDisablePreparedBinary), nil
	case config.StorageMemory:
		return memory.NewTeamStore(nil), nil
	default:
		return nil, fmt.Errorf("unsupported storage %q", cfg.Storage)
	}
}

func NewTeamsFunction(cfg config.Config, logger *logging.Logger) (function.HandlerFunc, error) {
	opener, err := NewTeamOpener(cfg)
	if err != nil {
		return nil, err
	}

	svc := usecase.NewTeamService(opener, logger)
	return function.NewTeamsHandler(svc, logger).Handle, nil
}

func NewUploadFunction(logger *logging.Logger) function.HandlerFunc {
	svc := usecase.NewUploadService(id.NewUUIDGenerator())
	return function.NewUploadHandler(svc, logger).Handle
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	opener, err := NewTeamOpener(cfg)
	if err != nil {
		return nil, err
	}

	teamSvc := usecase.NewTeamService(opener, logger)
	uploadSvc := usecase.NewUploadService(id.NewUUIDGenerator())

	router := httpapi.NewRouter(
		httpapi.NewHandler(teamSvc, logger),
		httpapi.Functions{
			Teams:  function.NewTeamsHandler(teamSvc, logger).Handle,
			Upload: function.NewUploadHandler(uploadSvc, logger).Handle,
		},
		logger,
		cfg.CORSAllowedOrigins,
	)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
