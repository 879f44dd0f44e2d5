package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pantrylens/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the product catalog API. The catalog is
// treated as a black box that maps a barcode to {name, categories[]}.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
	debug       bool
}

// productResponse is the catalog's wire format for a single product lookup.
type productResponse struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Product struct {
		ProductName    string   `json:"product_name"`
		Brands         string   `json:"brands"`
		CategoriesTags []string `json:"categories_tags"`
	} `json:"product"`
}

// NewClient creates a new catalog API client.
func NewClient(baseURL, userAgent string) *Client {
	// The public catalog asks clients to stay under 100 requests per minute
	limiter := rate.NewLimiter(rate.Limit(100.0/60.0), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   userAgent,
		rateLimiter: limiter,
	}
}

// SetDebug enables request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// LookupProduct fetches the catalog record for a barcode. Transient failures
// are retried up to 3 times with a linear backoff; a 404 means the barcode
// is unknown and is not retried.
func (c *Client) LookupProduct(ctx context.Context, barcode string) (*domain.ProductRecord, error) {
	if barcode == "" {
		return nil, domain.ErrInvalidRequest
	}

	endpoint := fmt.Sprintf("%s/api/v2/product/%s", c.baseURL, url.PathEscape(barcode))
	params := url.Values{}
	params.Add("fields", "product_name,brands,categories_tags")
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[CATALOG] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrProductNotFound
		}
		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[CATALOG] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogFailure, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var parsed productResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		if parsed.Product.ProductName == "" {
			return nil, domain.ErrProductNotFound
		}

		record := &domain.ProductRecord{
			Barcode:    barcode,
			Name:       parsed.Product.ProductName,
			Categories: stripLanguagePrefixes(parsed.Product.CategoriesTags),
		}
		if c.debug {
			log.Printf("[CATALOG] %s -> %q (%d categories)", barcode, record.Name, len(record.Categories))
		}
		return record, nil
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET request with proper headers
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogFailure, err)
	}
	return resp, nil
}

// stripLanguagePrefixes removes "en:"/"nl:"-style prefixes from category tags.
func stripLanguagePrefixes(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if idx := strings.Index(tag, ":"); idx == 2 {
			tag = tag[idx+1:]
		}
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
