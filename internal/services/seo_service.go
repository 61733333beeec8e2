package services

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"entlead/pkg/utils"
)

type SEOServiceInterface interface {
	// Analyze proxies the page URL to the external audit service and
	// relays its JSON verdict unchanged.
	Analyze(ctx context.Context, pageURL string) (json.RawMessage, error)
}

type SEOService struct {
	auditURL   string
	httpClient *http.Client
}

func NewSEOService(auditURL string) SEOServiceInterface {
	return &SEOService{
		auditURL:   auditURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SEOService) Analyze(ctx context.Context, pageURL string) (json.RawMessage, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, utils.ErrInvalidInput
	}

	endpoint := s.auditURL + "?url=" + url.QueryEscape(pageURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, utils.ErrUpstreamFailure
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Error calling SEO audit service: %v", err)
		return nil, utils.ErrUpstreamFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("SEO audit service returned status %d", resp.StatusCode)
		return nil, utils.ErrUpstreamFailure
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.ErrUpstreamFailure
	}
	if !json.Valid(body) {
		return nil, utils.ErrUpstreamFailure
	}

	return json.RawMessage(body), nil
}
