package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mfonda/simhash"
)

var ErrSearchUnavailable = errors.New("search service unavailable")

// Searcher issues one search request and returns the result page in engine
// order.
type Searcher interface {
	Search(query string, count int) ([]Result, error)
}

const defaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// GoogleClient talks to the Google Custom Search JSON API. Responses are
// cached per (query, count) for the lifetime of the run and near-duplicate
// items are dropped before they reach the caller.
type GoogleClient struct {
	apiKey   string
	engineID string
	baseURL  string
	client   *http.Client
	cache    *lru.Cache[string, []Result]
}

var _ Searcher = (*GoogleClient)(nil)

func NewGoogleClient(apiKey, engineID string) *GoogleClient {
	cache, _ := lru.New[string, []Result](64)
	return &GoogleClient{
		apiKey:   apiKey,
		engineID: engineID,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 30 * time.Second},
		cache:    cache,
	}
}

type searchResponse struct {
	Items []Result `json:"items"`
}

func (c *GoogleClient) Search(query string, count int) ([]Result, error) {
	key := strconv.Itoa(count) + "|" + query
	if results, ok := c.cache.Get(key); ok {
		return results, nil
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(count))

	resp, err := c.client.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSearchUnavailable, resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}

	results := Dedup(decoded.Items)
	c.cache.Add(key, results)
	return results, nil
}

// Dedup drops near-duplicate results by simhash over the result text,
// keeping the first occurrence.
func Dedup(results []Result) []Result {
	seen := map[uint64]struct{}{}
	deduped := make([]Result, 0, len(results))
	for _, result := range results {
		hash := simhash.Simhash(simhash.NewWordFeatureSet([]byte(strings.ToLower(result.Text()))))
		if _, ok := seen[hash]; ok {
			continue
		}
		seen[hash] = struct{}{}
		deduped = append(deduped, result)
	}
	return deduped
}
