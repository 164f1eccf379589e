package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to the Google Books volumes API. Failed requests are not
// retried here; callers decide whether a fetch is worth repeating.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

func NewClient(baseURL, apiKey string, timeout time.Duration, rps int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// VolumesResponse matches GET /volumes
type VolumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

// Volume matches one volume resource. Only the fields the catalog layer
// reads are declared; everything is optional on the wire.
type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
	SaleInfo   SaleInfo   `json:"saleInfo"`
	AccessInfo AccessInfo `json:"accessInfo"`
}

type VolumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	PublishedDate string   `json:"publishedDate"`
	PageCount     int      `json:"pageCount"`
	Categories    []string `json:"categories"`
	AverageRating float64  `json:"averageRating"`
	RatingsCount  int      `json:"ratingsCount"`
	PreviewLink   string   `json:"previewLink"`
	ImageLinks    struct {
		SmallThumbnail string `json:"smallThumbnail"`
		Thumbnail      string `json:"thumbnail"`
	} `json:"imageLinks"`
}

type SaleInfo struct {
	Saleability string `json:"saleability"`
	ListPrice   *struct {
		Amount       float64 `json:"amount"`
		CurrencyCode string  `json:"currencyCode"`
	} `json:"listPrice"`
}

type AccessInfo struct {
	WebReaderLink string `json:"webReaderLink"`
	Epub          struct {
		IsAvailable bool `json:"isAvailable"`
	} `json:"epub"`
	Pdf struct {
		IsAvailable bool `json:"isAvailable"`
	} `json:"pdf"`
}

func (c *Client) SearchVolumes(ctx context.Context, query string, maxResults, startIndex int) (*VolumesResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("startIndex", strconv.Itoa(startIndex))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	var res VolumesResponse
	if err := c.get(ctx, c.baseURL+"/volumes?"+params.Encode(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetVolume(ctx context.Context, volumeID string) (*Volume, error) {
	u := c.baseURL + "/volumes/" + url.PathEscape(volumeID)
	if c.apiKey != "" {
		u += "?key=" + url.QueryEscape(c.apiKey)
	}

	var res Volume
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
