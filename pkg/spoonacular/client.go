package spoonacular

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rbarros/recipefinder/pkg/data"
)

const (
	// DefaultBaseURL is the public Spoonacular API endpoint.
	DefaultBaseURL = "https://api.spoonacular.com"

	// DefaultSearchLimit caps search results when the caller gives no limit.
	DefaultSearchLimit = 5

	// errBodyLimit bounds how much of an error response is kept for
	// diagnostics.
	errBodyLimit = 4 << 10
)

// Config is the injected client configuration. Zero fields take defaults,
// which makes pointing the client at a test server a one-liner.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// StatusError reports a non-2xx response from the API, carrying the status
// and a bounded copy of the body for diagnostics.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("spoonacular: HTTP %d from %s", e.StatusCode, e.URL)
}

// Client wraps the three read-only Spoonacular endpoints. Every call is a
// fresh round trip: no retries, no caching.
type Client struct {
	api     *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg Config) *Client {
	api := cfg.HTTPClient
	if api == nil {
		api = http.DefaultClient
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{api: api, baseURL: baseURL, apiKey: cfg.APIKey}
}

func (c *Client) get(path string, params url.Values, v any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apiKey", c.apiKey)
	req, err := http.NewRequest("GET", fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode()), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.api.Do(req)
	if err != nil {
		return fmt.Errorf("spoonacular: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return &StatusError{
			URL:        c.baseURL + path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("spoonacular: decode %s: %w", path, err)
	}
	return nil
}

// SearchByIngredients queries findByIngredients with ranking=2 (maximize
// used ingredients) and pantry staples ignored. limit <= 0 falls back to
// DefaultSearchLimit.
func (c *Client) SearchByIngredients(ingredients string, limit int) ([]data.Recipe, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	params := url.Values{}
	params.Set("ingredients", ingredients)
	params.Set("number", strconv.Itoa(limit))
	params.Set("ranking", "2")
	params.Set("ignorePantry", "true")

	var results []SearchResult
	if err := c.get("/recipes/findByIngredients", params, &results); err != nil {
		return nil, err
	}
	out := make([]data.Recipe, len(results))
	for i, result := range results {
		out[i] = *result.ToRecipe()
	}
	return out, nil
}

// GetDetails fetches the per-recipe information endpoint.
func (c *Client) GetDetails(recipeID int) (*data.RecipeDetails, error) {
	var details Details
	if err := c.get(fmt.Sprintf("/recipes/%d/information", recipeID), nil, &details); err != nil {
		return nil, err
	}
	return details.ToDetails(), nil
}

// GetInstructions fetches the analyzed instructions. The returned slice may
// be empty; callers must treat that as "no instructions", not index into it.
func (c *Client) GetInstructions(recipeID int) ([]data.InstructionSet, error) {
	var sets []Instructions
	if err := c.get(fmt.Sprintf("/recipes/%d/analyzedInstructions", recipeID), nil, &sets); err != nil {
		return nil, err
	}
	out := make([]data.InstructionSet, len(sets))
	for i, set := range sets {
		out[i] = *set.ToInstructionSet()
	}
	return out, nil
}
