package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sroireport/internal/domain"
	mock_repository "sroireport/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("read succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_repository.NewMockConnectivityRepository(ctrl)
		client.EXPECT().ProbeRead(gomock.Any()).Return(nil)

		require.Equal(t, domain.ConnectivityState{Status: domain.ConnectivityReady}, Probe(ctx, client))
	})

	t.Run("missing relation is ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_repository.NewMockConnectivityRepository(ctrl)
		client.EXPECT().ProbeRead(gomock.Any()).Return(&domain.ProbeError{Code: "PGRST204", Message: "whatever"})

		require.Equal(t, domain.ConnectivityReady, Probe(ctx, client).Status)
	})

	t.Run("schema cache is warming up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_repository.NewMockConnectivityRepository(ctrl)
		client.EXPECT().ProbeRead(gomock.Any()).Return(&domain.ProbeError{Message: "schema cache is stale"})

		require.Equal(t, domain.ConnectivityWarmingUp, Probe(ctx, client).Status)
	})

	t.Run("transport failure is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_repository.NewMockConnectivityRepository(ctrl)
		client.EXPECT().ProbeRead(gomock.Any()).Return(errors.New("connection refused"))

		require.Equal(t, domain.ConnectivityState{
			Status:  domain.ConnectivityError,
			Message: "connection refused",
		}, Probe(ctx, client))
	})

	t.Run("panicking client is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_repository.NewMockConnectivityRepository(ctrl)
		client.EXPECT().ProbeRead(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			panic("nil client")
		})

		state := Probe(ctx, client)
		require.Equal(t, domain.ConnectivityError, state.Status)
		require.Equal(t, "probe panicked: nil client", state.Message)
	})
}

func TestConnectivityService_Probe(t *testing.T) {
	t.Run("read runs under the timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_repository.NewMockConnectivityRepository(ctrl)
		client.EXPECT().ProbeRead(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			require.True(t, ok)
			<-ctx.Done()
			return ctx.Err()
		})

		state := NewConnectivityService(client, 10*time.Millisecond).Probe(context.Background())
		require.Equal(t, domain.ConnectivityError, state.Status)
		require.Equal(t, context.DeadlineExceeded.Error(), state.Message)
	})

	t.Run("no timeout configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_repository.NewMockConnectivityRepository(ctrl)
		client.EXPECT().ProbeRead(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			require.False(t, ok)
			return nil
		})

		state := NewConnectivityService(client, 0).Probe(context.Background())
		require.Equal(t, domain.ConnectivityReady, state.Status)
	})
}
