// Package openlibrary is a thin client for the Open Library search API
// and its cover/detail URL scheme.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookgrid/internal/domain"
)

const defaultUserAgent = "bookgrid/1.0 (terminal book browser)"

// Client queries the Open Library search endpoint.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	coversBaseURL string
	siteBaseURL   string
	userAgent     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a client for the given endpoints. Empty URLs fall
// back to the public Open Library hosts.
func NewClient(baseURL, coversBaseURL, siteBaseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		baseURL:       baseURL,
		coversBaseURL: coversBaseURL,
		siteBaseURL:   siteBaseURL,
		userAgent:     defaultUserAgent,
	}
	if c.baseURL == "" {
		c.baseURL = "https://openlibrary.org/search.json"
	}
	if c.coversBaseURL == "" {
		c.coversBaseURL = "https://covers.openlibrary.org"
	}
	if c.siteBaseURL == "" {
		c.siteBaseURL = "https://openlibrary.org"
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Page is one page of raw search results. HasTotal is false when the
// server omitted numFound.
type Page struct {
	Books    []domain.Book
	Total    int
	HasTotal bool
}

// Search performs one search request. The query text is sent under the
// parameter named by params.Field; unknown fields fall back to the
// free-text "q" parameter. Cancellation of ctx surfaces as an error
// wrapping context.Canceled.
func (c *Client) Search(ctx context.Context, params domain.SearchParams) (*Page, error) {
	values := url.Values{}
	values.Set(fieldParam(params.Field), params.Query())
	if params.Language != "" {
		values.Set("language", params.Language)
	}
	values.Set("page", strconv.Itoa(params.Page))
	values.Set("limit", strconv.Itoa(params.PageSize))

	reqURL := c.baseURL + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open library request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open library returned HTTP %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing open library response: %w", err)
	}

	page := &Page{HasTotal: sr.NumFound != nil}
	if sr.NumFound != nil {
		page.Total = *sr.NumFound
	}
	for _, doc := range sr.Docs {
		page.Books = append(page.Books, domain.Book{
			Key:              doc.Key,
			Title:            doc.Title,
			Authors:          doc.AuthorName,
			FirstPublishYear: doc.FirstPublishYear,
			CoverID:          doc.CoverI,
			ISBNs:            doc.ISBN,
			Subjects:         doc.Subject,
			EditionKeys:      doc.EditionKey,
		})
	}
	return page, nil
}

func fieldParam(field domain.SearchField) string {
	switch field {
	case domain.FieldTitle, domain.FieldAuthor, domain.FieldISBN, domain.FieldSubject:
		return string(field)
	default:
		return "q"
	}
}

// Open Library API JSON structures.
type searchResponse struct {
	NumFound *int        `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

type searchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear *int     `json:"first_publish_year"`
	CoverI           *int     `json:"cover_i"`
	ISBN             []string `json:"isbn"`
	Subject          []string `json:"subject"`
	EditionKey       []string `json:"edition_key"`
}
