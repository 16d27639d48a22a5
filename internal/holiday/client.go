package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrMissingKey indicates no data.go.kr service key is configured.
// Live holiday lookups are impossible without one.
var ErrMissingKey = errors.New("holiday service key is not configured (set GISU_HOLIDAY_KEY)")

const restDePath = "/B090041/openapi/service/SpcdeInfoService/getRestDeInfo"

// Client fetches holidays from the data.go.kr special-day API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Client. Fails when the service key is missing so
// callers can decide between aborting (generator) and degrading (app).
func NewClient(cfg Config) (*Client, error) {
	if cfg.ServiceKey == "" {
		return nil, ErrMissingKey
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// apiResponse mirrors the subset of the API envelope we read. The items
// field is raw because the API encodes no matches as an empty string,
// one match as an object, and many as an array.
type apiResponse struct {
	Response struct {
		Body struct {
			Items json.RawMessage `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

type apiItem struct {
	Locdate  json.Number `json:"locdate"` // YYYYMMDD
	DateName string      `json:"dateName"`
}

// FetchYear returns the normalized holiday list for a year.
func (c *Client) FetchYear(ctx context.Context, year int) ([]Holiday, error) {
	q := url.Values{}
	q.Set("serviceKey", c.cfg.ServiceKey)
	q.Set("solYear", fmt.Sprintf("%d", year))
	q.Set("numOfRows", "100")
	q.Set("pageNo", "1")
	q.Set("_type", "json")

	reqURL := c.cfg.Endpoint + restDePath + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling holiday API for %d: %w", year, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading holiday response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d for year %d", resp.StatusCode, year)
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding holiday response: %w", err)
	}

	items, err := decodeItems(envelope.Response.Body.Items)
	if err != nil {
		return nil, err
	}

	holidays := make([]Holiday, 0, len(items))
	for _, it := range items {
		date, err := ymdFromInt(it.Locdate.String())
		if err != nil {
			continue
		}
		holidays = append(holidays, Holiday{
			Date:       date,
			Name:       it.DateName,
			Substitute: isSubstitute(it.DateName),
		})
	}
	return Normalize(holidays), nil
}

// decodeItems handles the API's item encodings: an empty string when
// there are no matches, a single object, or an array.
func decodeItems(raw json.RawMessage) ([]apiItem, error) {
	if len(raw) == 0 || string(raw) == `""` || string(raw) == "null" {
		return nil, nil
	}

	var wrapper struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("decoding holiday items: %w", err)
	}
	if len(wrapper.Item) == 0 || string(wrapper.Item) == "null" {
		return nil, nil
	}

	var many []apiItem
	if err := json.Unmarshal(wrapper.Item, &many); err == nil {
		return many, nil
	}

	var one apiItem
	if err := json.Unmarshal(wrapper.Item, &one); err != nil {
		return nil, fmt.Errorf("decoding holiday items: %w", err)
	}
	return []apiItem{one}, nil
}

// ymdFromInt converts the API's YYYYMMDD form to YYYY-MM-DD.
func ymdFromInt(s string) (string, error) {
	if len(s) != 8 {
		return "", fmt.Errorf("unexpected locdate %q", s)
	}
	return s[0:4] + "-" + s[4:6] + "-" + s[6:8], nil
}
