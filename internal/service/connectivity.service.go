package service

import (
	"context"
	"fmt"
	"time"

	"sroireport/internal/domain"
	"sroireport/internal/logger"
	"sroireport/internal/repository"
)

// Probe does one minimal read through client and classifies the outcome.
// It never fails; every outcome, a panicking client included, maps onto a
// ConnectivityState.
func Probe(ctx context.Context, client repository.ConnectivityRepository) (state domain.ConnectivityState) {
	defer func() {
		if r := recover(); r != nil {
			state = domain.ClassifyProbeError(fmt.Errorf("probe panicked: %v", r))
		}
	}()

	err := client.ProbeRead(ctx)
	return domain.ClassifyProbeError(err)
}

type ConnectivityService interface {
	Probe(ctx context.Context) domain.ConnectivityState
}

type connectivityServiceHandler struct {
	ConnectivityRepository repository.ConnectivityRepository
	Timeout                time.Duration
}

func NewConnectivityService(connectivityRepository repository.ConnectivityRepository, timeout time.Duration) ConnectivityService {
	return connectivityServiceHandler{
		ConnectivityRepository: connectivityRepository,
		Timeout:                timeout,
	}
}

func (h connectivityServiceHandler) Probe(ctx context.Context) domain.ConnectivityState {
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	start := time.Now()
	state := Probe(ctx, h.ConnectivityRepository)

	lg := logger.FromContext(ctx)
	if state.Status == domain.ConnectivityError {
		lg.Warnw("connectivity probe failed", "message", state.Message, "elapsed", time.Since(start).String())
	} else {
		lg.Infow("connectivity probe finished", "status", string(state.Status), "elapsed", time.Since(start).String())
	}

	return state
}
