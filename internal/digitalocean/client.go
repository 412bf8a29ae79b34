// Package digitalocean implements record creation against the DigitalOcean
// DNS API (POST /v2/domains/<domain>/records with a bearer token).
package digitalocean

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"zonemigrate/internal/provider"
	"zonemigrate/internal/zone"
)

const defaultBaseURL = "https://api.digitalocean.com/v2"

type NewOptions struct {
	APIToken string
	BaseURL  string // empty: api.digitalocean.com
}

type client struct {
	token string
	base  string
	http  *http.Client
}

// APIError is a non-2xx answer from the API, carrying the server's message
// so the operator sees what the endpoint rejected.
type APIError struct {
	StatusCode int
	Message    string
}

func (e APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

func New(opt NewOptions) (provider.Client, error) {
	if strings.TrimSpace(opt.APIToken) == "" {
		return nil, fmt.Errorf("missing DigitalOcean api token")
	}
	base := strings.TrimSuffix(strings.TrimSpace(opt.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return &client{
		token: strings.TrimSpace(opt.APIToken),
		base:  base,
		http:  &http.Client{Timeout: 20 * time.Second},
	}, nil
}

func (c *client) SupportsRecordType(t zone.RecordType) bool {
	switch t {
	case zone.TypeA, zone.TypeCNAME, zone.TypeMX, zone.TypeTXT, zone.TypeSRV:
		return true
	default:
		return false
	}
}

func (c *client) CreateRecord(ctx context.Context, domain string, record zone.Record) (provider.CreateStatus, error) {
	var resp recordResponse
	path := "/domains/" + url.PathEscape(strings.TrimSuffix(domain, ".")) + "/records"
	if err := c.do(ctx, http.MethodPost, path, createBody(record), &resp); err != nil {
		return provider.CreateStatusFail, err
	}
	return provider.CreateStatusSuccess, nil
}

func (c *client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if json.Unmarshal(b, &apiErr) == nil && apiErr.Message != "" {
			return APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
		}
		return APIError{StatusCode: resp.StatusCode, Message: string(bytes.TrimSpace(b))}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(b, out)
}

type errorResponse struct {
	Message string `json:"message"`
}

type recordResponse struct {
	DomainRecord struct {
		ID   int    `json:"id"`
		Type string `json:"type"`
		Name string `json:"name"`
		Data string `json:"data"`
	} `json:"domain_record"`
}
