// Package nemsas is a typed client for the claims API. It unwraps the
// {data, message, isSuccess} envelope and turns failures into errors whose
// message is ready to show a user.
package nemsas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nemsas/claims/internal/domain/catalog"
	"github.com/nemsas/claims/internal/domain/claims"
	"github.com/nemsas/claims/internal/domain/patients"
	"github.com/nemsas/claims/internal/domain/terminology"
)

// ErrNetwork is returned for transport failures where no server response
// arrived. Its message is shown verbatim in the UI.
var ErrNetwork = errors.New("Network error. Please check your connection.")

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	IsSuccess bool            `json:"isSuccess"`
}

// do issues the request and decodes the envelope into out. A transport
// failure maps to ErrNetwork; isSuccess=false maps to an error carrying the
// server message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrNetwork
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("Server error: %d", resp.StatusCode)
	}
	if !env.IsSuccess {
		if env.Message != "" {
			return errors.New(env.Message)
		}
		return fmt.Errorf("Server error: %d", resp.StatusCode)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// FetchClaim retrieves a single claim by id.
func (c *Client) FetchClaim(ctx context.Context, id string) (*claims.Claim, error) {
	var cl claims.Claim
	if err := c.do(ctx, http.MethodGet, "/api/v1/nemsas-claims/"+id, nil, nil, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// UpdateClaim submits an edited claim.
func (c *Client) UpdateClaim(ctx context.Context, id string, p *claims.UpdatePayload) error {
	return c.do(ctx, http.MethodPut, "/api/v1/nemsas-claims/"+id, nil, p, nil)
}

// CreateClaim files a new claim and returns the stored copy.
func (c *Client) CreateClaim(ctx context.Context, cl *claims.Claim) (*claims.Claim, error) {
	var created claims.Claim
	if err := c.do(ctx, http.MethodPost, "/api/v1/nemsas-claims", nil, cl, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteClaim(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/nemsas-claims/"+id, nil, nil, nil)
}

// ClaimListParams mirror the all-claims query parameters.
type ClaimListParams struct {
	ProviderID    string
	NEMSASID      string
	ClaimStatus   string
	PatientNumber string
	StartDate     string
	EndDate       string
	SortBy        string
	PageNumber    int
	PageSize      int
}

func (p ClaimListParams) query() url.Values {
	q := url.Values{}
	set := func(key, v string) {
		if v != "" {
			q.Set(key, v)
		}
	}
	set("ProviderId", p.ProviderID)
	set("NEMSASId", p.NEMSASID)
	set("ClaimStatus", p.ClaimStatus)
	set("PatientNumber", p.PatientNumber)
	set("StartDate", p.StartDate)
	set("EndDate", p.EndDate)
	set("SortBy", p.SortBy)
	if p.PageNumber > 0 {
		q.Set("PageNumber", strconv.Itoa(p.PageNumber))
	}
	if p.PageSize > 0 {
		q.Set("PageSize", strconv.Itoa(p.PageSize))
	}
	return q
}

// ClaimPage is one page of the claims list.
type ClaimPage struct {
	Items      []*claims.Claim `json:"items"`
	TotalCount int             `json:"totalCount"`
	PageNumber int             `json:"pageNumber"`
	PageSize   int             `json:"pageSize"`
	HasMore    bool            `json:"hasMore"`
}

func (c *Client) ListClaims(ctx context.Context, p ClaimListParams) (*ClaimPage, error) {
	var page ClaimPage
	if err := c.do(ctx, http.MethodGet, "/api/v1/nemsas-claims/all-claims", p.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DownloadExport streams the claims report into w. IsExcel selects xlsx
// over CSV. The export endpoint returns a raw blob, not an envelope.
func (c *Client) DownloadExport(ctx context.Context, p ClaimListParams, isExcel bool, w io.Writer) error {
	q := p.query()
	q.Set("IsExcel", strconv.FormatBool(isExcel))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/nemsas-claims/export?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrNetwork
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Server error: %d", resp.StatusCode)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("download export: %w", err)
	}
	return nil
}

// SearchClassificationCodes queries the diagnosis code reference.
func (c *Client) SearchClassificationCodes(ctx context.Context, codeType, search string) ([]*terminology.ClassificationCode, error) {
	q := url.Values{}
	q.Set("CodeType", codeType)
	q.Set("Search", search)
	var codes []*terminology.ClassificationCode
	if err := c.do(ctx, http.MethodGet, "/api/v1/settings/classification-code", q, nil, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// ProductSearchParams mirror the product search query parameters.
type ProductSearchParams struct {
	Search    string
	Category  string
	Type      string
	IsCovered *bool
	Page      int
	PageSize  int
}

// ProductPage is one page of product search results.
type ProductPage struct {
	Items      []*catalog.Product `json:"items"`
	TotalCount int                `json:"totalCount"`
	PageNumber int                `json:"pageNumber"`
	PageSize   int                `json:"pageSize"`
	HasMore    bool               `json:"hasMore"`
}

func (c *Client) SearchProducts(ctx context.Context, p ProductSearchParams) (*ProductPage, error) {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.IsCovered != nil {
		q.Set("isCovered", strconv.FormatBool(*p.IsCovered))
	}
	if p.Page > 0 {
		q.Set("PageNumber", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("PageSize", strconv.Itoa(p.PageSize))
	}

	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "/api/v1/product", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) ListDepartments(ctx context.Context) ([]*catalog.Department, error) {
	var departments []*catalog.Department
	if err := c.do(ctx, http.MethodGet, "/api/v1/department", nil, nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (c *Client) ListServiceCategories(ctx context.Context) ([]*catalog.ServiceCategory, error) {
	var categories []*catalog.ServiceCategory
	if err := c.do(ctx, http.MethodGet, "/api/v1/service-category", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// RegisterPatient submits a patient registration and returns the summary.
func (c *Client) RegisterPatient(ctx context.Context, p *patients.Patient) (*patients.Registration, error) {
	var reg patients.Registration
	if err := c.do(ctx, http.MethodPost, "/api/v1/patient", nil, p, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}
