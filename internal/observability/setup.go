package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/ihl-standings/internal/config"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
)

// Stack holds the running telemetry pieces of a long-lived process.
type Stack struct {
	logger          *logging.Logger
	uptraceShutdown func(context.Context) error
	pyroscopeStop   func() error
	pprofServer     *http.Server
}

// Start enables Uptrace, Pyroscope and pprof as configured. Anything that
// started before a failure is stopped again.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}

	uptraceShutdown, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}

	pyroscopeStop, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = uptraceShutdown(context.Background())
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}

	return &Stack{
		logger:          logger,
		uptraceShutdown: uptraceShutdown,
		pyroscopeStop:   pyroscopeStop,
		pprofServer:     StartPprofServer(cfg, logger),
	}, nil
}

// Shutdown stops every component and reports all failures together.
func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}

	var errs []error
	if err := StopPprofServer(ctx, s.pprofServer); err != nil {
		errs = append(errs, fmt.Errorf("stop pprof: %w", err))
	}
	if err := s.pyroscopeStop(); err != nil {
		errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
	}
	if err := s.uptraceShutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown uptrace: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.logger.Info("observability stopped")
	return nil
}
