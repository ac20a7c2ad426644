package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_Select(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/rest/v1/test_connection", r.URL.Path)
			require.Equal(t, "id", r.URL.Query().Get("select"))
			require.Equal(t, "1", r.URL.Query().Get("limit"))
			require.Equal(t, "anon", r.Header.Get("apikey"))
			require.Equal(t, "Bearer anon", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id": 1}]`))
		}))
		defer server.Close()

		rows, err := NewClient(server.URL+"/", "anon").Select(context.Background(), "test_connection", "id", 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, float64(1), rows[0]["id"])
	})

	t.Run("postgrest error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":"PGRST204","message":"relation \"x\" does not exist","details":null,"hint":null}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, "anon").Select(context.Background(), "x", "id", 1)
		require.Error(t, err)

		var restErr *Error
		require.True(t, errors.As(err, &restErr))
		require.Equal(t, http.StatusNotFound, restErr.StatusCode)
		require.Equal(t, "PGRST204", restErr.Code)
		require.Equal(t, `relation "x" does not exist`, restErr.Message)
	})

	t.Run("non json error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream connect error"))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, "anon").Select(context.Background(), "x", "id", 1)

		var restErr *Error
		require.True(t, errors.As(err, &restErr))
		require.Equal(t, "", restErr.Code)
		require.Equal(t, "upstream connect error", restErr.Message)
	})

	t.Run("empty error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, "anon").Select(context.Background(), "x", "id", 1)

		var restErr *Error
		require.True(t, errors.As(err, &restErr))
		require.Equal(t, "Service Unavailable", restErr.Message)
	})
}
