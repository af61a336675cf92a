package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/satpilot/backend/internal/domain/question"
)

// maxHints caps how many search snippets become trend hints.
const maxHints = 5

// cacheTTL bounds how long cached hints stay fresh.
const cacheTTL = 6 * time.Hour

// Client looks up current topics for a subject area through a web-search
// API and turns the first few result snippets into trend hints. All failures
// degrade to a static hint list; nothing here ever returns an error.
type Client struct {
	searchURL string // JSON search endpoint, e.g. "https://api.search.example/v1"
	apiKey    string
	http      *http.Client
	cache     *redis.Client // optional; nil disables caching
	logger    *slog.Logger
}

// New creates a trends client. cache may be nil.
func New(searchURL, apiKey string, cache *redis.Client, logger *slog.Logger) *Client {
	return &Client{
		searchURL: searchURL,
		apiKey:    apiKey,
		http:      &http.Client{Timeout: 15 * time.Second},
		cache:     cache,
		logger:    logger,
	}
}

// searchResponse is the wire shape of the search API.
type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"results"`
}

// Hints returns trend hints for a category. Order of preference: cache,
// remote search, static fallback.
func (c *Client) Hints(ctx context.Context, cat question.Category) []string {
	if hints := c.cached(ctx, cat); len(hints) > 0 {
		return hints
	}

	hints, err := c.search(ctx, cat)
	if err != nil {
		c.logger.Warn("trend search failed, using static hints", "category", cat, "error", err)
		return fallbackHints(cat)
	}
	if len(hints) == 0 {
		return fallbackHints(cat)
	}

	c.store(ctx, cat, hints)
	return hints
}

func (c *Client) search(ctx context.Context, cat question.Category) ([]string, error) {
	if c.searchURL == "" {
		return nil, fmt.Errorf("no search endpoint configured")
	}

	query := fmt.Sprintf("SAT %s practice topics %d", strings.ReplaceAll(string(cat), "_", " "), time.Now().Year())
	endpoint := c.searchURL + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	var hints []string
	for _, r := range parsed.Results {
		if len(hints) == maxHints {
			break
		}
		snippet := strings.TrimSpace(r.Snippet)
		if snippet == "" {
			snippet = strings.TrimSpace(r.Title)
		}
		if snippet != "" {
			hints = append(hints, snippet)
		}
	}
	return hints, nil
}

func cacheKey(cat question.Category) string {
	return "trends:" + string(cat)
}

func (c *Client) cached(ctx context.Context, cat question.Category) []string {
	if c.cache == nil {
		return nil
	}
	raw, err := c.cache.Get(ctx, cacheKey(cat)).Result()
	if err != nil {
		return nil // miss or unavailable, either way fall through
	}
	var hints []string
	if err := json.Unmarshal([]byte(raw), &hints); err != nil {
		return nil
	}
	return hints
}

func (c *Client) store(ctx context.Context, cat question.Category, hints []string) {
	if c.cache == nil {
		return
	}
	raw, _ := json.Marshal(hints)
	if err := c.cache.Set(ctx, cacheKey(cat), string(raw), cacheTTL).Err(); err != nil {
		c.logger.Warn("failed to cache trend hints", "category", cat, "error", err)
	}
}

// fallbackHints is the static list used when search is unavailable.
func fallbackHints(cat question.Category) []string {
	generic := []string{
		"core concepts and formula fluency",
		"common trap answers and elimination strategies",
		"timed practice under test conditions",
	}
	specific, ok := map[question.Category][]string{
		question.CategoryAlgebra:      {"linear equations in real-world contexts", "systems of equations"},
		question.CategoryGeometry:     {"circle theorems", "right-triangle trigonometry"},
		question.CategoryAdvancedMath: {"quadratic functions", "exponential growth models"},
		question.CategoryDataAnalysis: {"interpreting scatterplots", "ratios and unit conversion"},
		question.CategoryReading:      {"paired evidence questions", "main idea and purpose"},
		question.CategoryVocabulary:   {"words in context", "connotation versus denotation"},
		question.CategoryGrammar:      {"subject-verb agreement", "punctuation of clauses"},
		question.CategoryWriting:      {"transitions between ideas", "concision and redundancy"},
	}[cat]
	if ok {
		return append(specific, generic...)
	}
	return generic
}
