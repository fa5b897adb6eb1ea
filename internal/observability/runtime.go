package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/penca/internal/config"
	"github.com/riskibarqy/penca/internal/platform/logging"
)

// Runtime holds the tracing, profiling and pprof lifecycles of one process.
type Runtime struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprof           *http.Server
}

// Start brings up every enabled component. On failure the ones already
// started are shut down before returning.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger, shutdownTracing: noopShutdown, stopProfiler: noopStop}

	var err error
	if rt.shutdownTracing, err = InitUptrace(cfg, logger); err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	if rt.stopProfiler, err = InitPyroscope(cfg, logger); err != nil {
		rt.stopProfiler = noopStop
		return nil, errors.Join(fmt.Errorf("init pyroscope: %w", err), rt.Shutdown(ctx))
	}
	if rt.pprof, err = StartPprofServer(cfg, logger); err != nil {
		return nil, errors.Join(fmt.Errorf("start pprof server: %w", err), rt.Shutdown(ctx))
	}

	return rt, nil
}

// Shutdown stops components in reverse start order and joins their errors.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	var errs []error
	if err := StopPprofServer(ctx, r.pprof); err != nil {
		errs = append(errs, fmt.Errorf("stop pprof server: %w", err))
	}
	if err := r.stopProfiler(); err != nil {
		errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
	}
	if err := r.shutdownTracing(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown uptrace: %w", err))
	}
	if len(errs) == 0 {
		r.logger.InfoContext(ctx, "observability stopped")
	}
	return errors.Join(errs...)
}
