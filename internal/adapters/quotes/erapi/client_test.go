package erapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/shefra_converter/internal/adapters/quotes/erapi"
	"github.com/SscSPs/shefra_converter/internal/apperrors"
	"github.com/SscSPs/shefra_converter/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotPath
}

func TestFetchLatestRates_Success(t *testing.T) {
	srv, gotPath := newServer(t, http.StatusOK, `{
		"result": "success",
		"base_code": "USD",
		"time_last_update_unix": 1700000000,
		"rates": {"USD": 1, "INR": 83.1, "EUR": 0.92}
	}`)

	client := erapi.NewClient(srv.URL + "/v6/latest/")
	latest, err := client.FetchLatestRates(context.Background(), domain.USD)

	require.NoError(t, err)
	assert.Equal(t, "/v6/latest/USD", *gotPath)
	assert.Equal(t, "USD", latest.Base)
	assert.Equal(t, 83.1, latest.Rates["INR"])
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), latest.UpdatedAt)
}

func TestFetchLatestRates_LegacyFields(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"base": "EUR", "time_last_updated": 1600000000, "rates": {"EUR": 1, "INR": 90}}`)

	latest, err := erapi.NewClient(srv.URL).FetchLatestRates(context.Background(), domain.EUR)

	require.NoError(t, err)
	assert.Equal(t, "EUR", latest.Base)
	assert.Equal(t, time.Unix(1600000000, 0).UTC(), latest.UpdatedAt)
}

func TestFetchLatestRates_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "non-2xx status", status: http.StatusServiceUnavailable, body: `{}`},
		{name: "malformed json", status: http.StatusOK, body: `{"rates": `},
		{name: "missing rates", status: http.StatusOK, body: `{"base_code": "USD"}`},
		{name: "non-numeric rate", status: http.StatusOK, body: `{"base_code": "USD", "rates": {"INR": "a lot"}}`},
		{name: "service reported error", status: http.StatusOK, body: `{"result": "error", "error-type": "unsupported-code"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			latest, err := erapi.NewClient(srv.URL).FetchLatestRates(context.Background(), domain.USD)
			assert.Nil(t, latest)
			assert.ErrorIs(t, err, apperrors.ErrRatesUnavailable)
		})
	}
}

func TestFetchLatestRates_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := erapi.NewClient(srv.URL).FetchLatestRates(ctx, domain.USD)
	assert.ErrorIs(t, err, apperrors.ErrRatesUnavailable)
}

func TestFetchLatestRates_RateLimitedWaitExceedsDeadline(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"base_code": "USD", "rates": {"USD": 1}}`)
	client := erapi.NewClient(srv.URL, erapi.WithRateLimit(0.001, 1))

	_, err := client.FetchLatestRates(context.Background(), domain.USD)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.FetchLatestRates(ctx, domain.USD)
	assert.ErrorIs(t, err, apperrors.ErrRatesUnavailable)
}
