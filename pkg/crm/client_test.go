package crm_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tradenomi-backend/config"
	"tradenomi-backend/pkg/crm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(url string) *crm.Client {
	return crm.NewClient(&config.Config{
		CRMBaseURL:  url,
		CRMAuth:     "token",
		CRMCustomer: "tral",
		CRMUser:     "api",
		CRMPassword: "pw",
		CRMTimeout:  time.Second,
	})
}

func TestTitlesSendsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "api" || pass != "pw" || r.Header.Get("X-Customer") != "tral" || r.Header.Get("X-Auth") != "token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/positiontitles":
			_, _ = w.Write([]byte(`{"1":"Controller","2":"Asiantuntija"}`))
		case "/domaintitles":
			_, _ = w.Write([]byte(`{"10":"Taloushallinto"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	positions, err := c.PositionTitles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "Controller", "2": "Asiantuntija"}, positions)

	domains, err := c.DomainTitles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"10": "Taloushallinto"}, domains)
}

func TestTitlesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).PositionTitles(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestTitlesNotConfigured(t *testing.T) {
	_, err := crm.NewClient(&config.Config{}).DomainTitles(context.Background())
	assert.ErrorIs(t, err, crm.ErrNotConfigured)
}
