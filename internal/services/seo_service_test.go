package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"entlead/pkg/utils"

	"github.com/stretchr/testify/require"
)

func TestSEOAnalyzeRelaysVerdict(t *testing.T) {
	var gotURL string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Query().Get("url")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"score":87,"issues":["missing meta description"]}`))
	}))
	defer upstream.Close()

	svc := NewSEOService(upstream.URL)
	verdict, err := svc.Analyze(context.Background(), "https://lakeside-ent.example.com/services")
	require.NoError(t, err)
	require.Equal(t, "https://lakeside-ent.example.com/services", gotURL)
	require.JSONEq(t, `{"score":87,"issues":["missing meta description"]}`, string(verdict))
}

func TestSEOAnalyzeRejectsBadURLs(t *testing.T) {
	svc := NewSEOService("http://audit.invalid")

	for _, pageURL := range []string{
		"",
		"not a url",
		"ftp://example.com/page",
		"javascript:alert(1)",
	} {
		_, err := svc.Analyze(context.Background(), pageURL)
		require.ErrorIs(t, err, utils.ErrInvalidInput, "url %q", pageURL)
	}
}

func TestSEOAnalyzeUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	svc := NewSEOService(upstream.URL)
	_, err := svc.Analyze(context.Background(), "https://example.com")
	require.ErrorIs(t, err, utils.ErrUpstreamFailure)
}

func TestSEOAnalyzeInvalidUpstreamJSON(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer upstream.Close()

	svc := NewSEOService(upstream.URL)
	_, err := svc.Analyze(context.Background(), "https://example.com")
	require.ErrorIs(t, err, utils.ErrUpstreamFailure)
}
