package out

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	adviceout "studylog/internal/modules/advice/port/out"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 64 * 1024
	userAgent        = "studylog/1.0"
)

type slipResponse struct {
	Slip *struct {
		Advice *string `json:"advice"`
	} `json:"slip"`
}

type HTTPAdviceSource struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

func NewHTTPAdviceSource(baseURL string, timeout time.Duration) (adviceout.AdviceSource, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse advice base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("advice base url must be http or https, got %q", baseURL)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	endpoint := base.ResolveReference(&url.URL{Path: "advice"})
	return &HTTPAdviceSource{
		endpoint: endpoint.String(),
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

func (s *HTTPAdviceSource) Fetch(ctx context.Context) (*string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build advice request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request advice: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("advice endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read advice response: %w", err)
	}
	var payload slipResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode advice response: %w", err)
	}
	if payload.Slip == nil {
		return nil, nil
	}
	return payload.Slip.Advice, nil
}
