package companieshouse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/opencompanybot/registration-service/internal/config"
	"github.com/opencompanybot/registration-service/internal/entities"
)

var (
	// ErrTerminal marks registry failures that will not succeed on retry:
	// invalid payloads, duplicate company names, rejected filings.
	ErrTerminal = errors.New("terminal registry error")
	// ErrTimeout and ErrUnavailable are transient, the caller retries them.
	ErrTimeout     = errors.New("registry timeout")
	ErrUnavailable = errors.New("registry unavailable")
)

// IncorporationResult is the registry's answer to a successful filing.
type IncorporationResult struct {
	CompanyNumber     string `json:"company_number"`
	CompanyName       string `json:"company_name"`
	IncorporationDate string `json:"incorporation_date"`
	Status            string `json:"status"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.CompaniesHouse) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

type incorporationRequest struct {
	CompanyName        string        `json:"company_name"`
	Type               string        `json:"type"`
	RegisteredOffice   address       `json:"registered_office_address"`
	Directors          []officer     `json:"directors"`
	Shareholders       []shareholder `json:"shareholders"`
	SICCodes           []string      `json:"sic_codes"`
	AuthenticationCode string        `json:"authentication_code,omitempty"`
}

type address struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

type officer struct {
	Name        string  `json:"name"`
	Nationality string  `json:"nationality,omitempty"`
	Occupation  string  `json:"occupation,omitempty"`
	Address     address `json:"address"`
}

type shareholder struct {
	Name   string `json:"name"`
	Shares int    `json:"shares"`
}

// Incorporate files a company incorporation. Errors carry a retryable or
// terminal classification via sentinel wrapping.
func (c *Client) Incorporate(ctx context.Context, payload entities.CompanyPayload) (IncorporationResult, error) {
	body, err := json.Marshal(incorporationRequestFromPayload(payload))
	if err != nil {
		return IncorporationResult{}, fmt.Errorf("failed to marshal incorporation request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/company/incorporation", bytes.NewReader(body))
	if err != nil {
		return IncorporationResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var result IncorporationResult
	if err := c.do(req, &result); err != nil {
		return IncorporationResult{}, err
	}
	if result.CompanyNumber == "" {
		return IncorporationResult{}, fmt.Errorf("%w: registry response missing company_number", ErrTerminal)
	}
	return result, nil
}

// Company returns the public profile of a registered company.
func (c *Client) Company(ctx context.Context, companyNumber string) (map[string]any, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/company/"+url.PathEscape(companyNumber), nil)
	if err != nil {
		return nil, err
	}

	var profile map[string]any
	if err := c.do(req, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// FilingHistory returns the filing history of a registered company.
func (c *Client) FilingHistory(ctx context.Context, companyNumber string) (map[string]any, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/company/"+url.PathEscape(companyNumber)+"/filing-history", nil)
	if err != nil {
		return nil, err
	}

	var filings map[string]any
	if err := c.do(req, &filings); err != nil {
		return nil, err
	}
	return filings, nil
}

// Search queries the registry's company search.
func (c *Client) Search(ctx context.Context, query, companyType string) (map[string]any, error) {
	params := url.Values{"q": {query}}
	if companyType != "" {
		params.Set("type", companyType)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/search/companies?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var results map[string]any
	if err := c.do(req, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	// Companies House authenticates with the API key as the basic-auth user.
	req.SetBasicAuth(c.apiKey, "")
	return req, nil
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %s", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %s", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: registry returned %d: %s", ErrUnavailable, resp.StatusCode, raw)
	default:
		return fmt.Errorf("%w: registry returned %d: %s", ErrTerminal, resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: failed to unmarshal response: %s", ErrTerminal, err)
	}
	return nil
}

// Retryable reports whether a registry error is worth another attempt.
func Retryable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrUnavailable)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func incorporationRequestFromPayload(p entities.CompanyPayload) incorporationRequest {
	directors := make([]officer, 0, len(p.Directors))
	for _, d := range p.Directors {
		directors = append(directors, officer{
			Name:        d.Name,
			Nationality: d.Nationality,
			Occupation:  d.Occupation,
			Address:     addressFromEntity(d.Address),
		})
	}
	shareholders := make([]shareholder, 0, len(p.Shareholders))
	for _, s := range p.Shareholders {
		shareholders = append(shareholders, shareholder{Name: s.Name, Shares: s.Shares})
	}

	return incorporationRequest{
		CompanyName:        p.CompanyName,
		Type:               p.CompanyType,
		RegisteredOffice:   addressFromEntity(p.RegisteredOffice),
		Directors:          directors,
		Shareholders:       shareholders,
		SICCodes:           p.SICCodes,
		AuthenticationCode: p.AuthenticationCode,
	}
}

func addressFromEntity(a entities.Address) address {
	return address{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		Locality:     a.Locality,
		Region:       a.Region,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
	}
}
