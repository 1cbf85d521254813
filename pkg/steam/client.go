// Package steam talks to the Steam Web API and the store API to import a
// user's library: owned games with playtime, store details (genres, price,
// description) and review summaries.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// steamIDRe matches 64-bit Steam IDs: 17 digits starting with 765611
var steamIDRe = regexp.MustCompile(`^765611[0-9]{11}$`)

// ValidateSteamID checks the Steam ID format
func ValidateSteamID(steamID string) error {
	if !steamIDRe.MatchString(strings.TrimSpace(steamID)) {
		return fmt.Errorf("invalid steam id %q, must be a 17-digit number starting with 765611", steamID)
	}
	return nil
}

// Client is a rate-limited Steam Web API client
type Client struct {
	apiKey    string
	apiBase   string
	storeBase string
	client    *http.Client
	limiter   *rate.Limiter
	sanitizer *bluemonday.Policy
}

// Config holds Steam client settings
type Config struct {
	APIKey    string
	APIBase   string        // override for tests, defaults to api.steampowered.com
	StoreBase string        // override for tests, defaults to store.steampowered.com
	Timeout   time.Duration // per-request timeout, 30s default
}

// NewClient creates a Steam client. Requests are throttled to 10 per second
// with a burst of 20, matching Steam's informal limits.
func NewClient(cfg Config) *Client {
	if cfg.APIBase == "" {
		cfg.APIBase = "https://api.steampowered.com"
	}
	if cfg.StoreBase == "" {
		cfg.StoreBase = "https://store.steampowered.com"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		apiKey:    cfg.APIKey,
		apiBase:   cfg.APIBase,
		storeBase: cfg.StoreBase,
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(10), 20),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// OwnedGame is one entry of GetOwnedGames
type OwnedGame struct {
	AppID           int64  `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"` // minutes
	RTimeLastPlayed int64  `json:"rtime_last_played"`
}

// AppDetails holds the subset of store appdetails used by the importer
type AppDetails struct {
	Name        string
	Description string
	Price       float64 // dollars, final price after discounts
	IsFree      bool
	Genres      []string
	Categories  []string
	ReleaseDate string
	Developer   string
	Publisher   string
}

// ReviewSummary holds the aggregate review data for an app
type ReviewSummary struct {
	TotalReviews    int
	PositiveReviews int
	RatingPercent   int
	Summary         string
}

// Details combines store details and reviews for one app
type Details struct {
	App     *AppDetails
	Reviews *ReviewSummary
}

// OwnedGames fetches the user's library including free games they played.
// Retried with backoff since this is the call the whole import depends on.
func (c *Client) OwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error) {
	if err := ValidateSteamID(steamID); err != nil {
		return nil, err
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("steam api key is not configured")
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("steamid", steamID)
	q.Set("include_appinfo", "1")
	q.Set("include_played_free_games", "1")
	q.Set("format", "json")
	reqURL := c.apiBase + "/IPlayerService/GetOwnedGames/v1/?" + q.Encode()

	var games []OwnedGame
	retrier := repeater.NewBackoff(3, 500*time.Millisecond, repeater.WithMaxDelay(5*time.Second))
	err := retrier.Do(ctx, func() error {
		var payload struct {
			Response struct {
				GameCount int         `json:"game_count"`
				Games     []OwnedGame `json:"games"`
			} `json:"response"`
		}
		if err := c.getJSON(ctx, reqURL, &payload); err != nil {
			return err
		}
		games = payload.Response.Games
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch owned games: %w", err)
	}
	return games, nil
}

// AppDetailsFor fetches store details for an app. Store failures are
// non-critical, callers get a nil result and no error for missing data.
func (c *Client) AppDetailsFor(ctx context.Context, appID int64) (*AppDetails, error) {
	reqURL := fmt.Sprintf("%s/api/appdetails?appids=%d&l=english", c.storeBase, appID)

	var payload map[string]struct {
		Success bool `json:"success"`
		Data    struct {
			Name             string `json:"name"`
			ShortDescription string `json:"short_description"`
			IsFree           bool   `json:"is_free"`
			PriceOverview    *struct {
				Initial int `json:"initial"` // cents
				Final   int `json:"final"`
			} `json:"price_overview"`
			Genres []struct {
				Description string `json:"description"`
			} `json:"genres"`
			Categories []struct {
				Description string `json:"description"`
			} `json:"categories"`
			ReleaseDate struct {
				Date string `json:"date"`
			} `json:"release_date"`
			Developers []string `json:"developers"`
			Publishers []string `json:"publishers"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		return nil, fmt.Errorf("fetch app details for %d: %w", appID, err)
	}

	entry, ok := payload[strconv.FormatInt(appID, 10)]
	if !ok || !entry.Success {
		return nil, nil
	}
	d := entry.Data

	details := &AppDetails{
		Name:        d.Name,
		Description: c.sanitize(d.ShortDescription),
		IsFree:      d.IsFree,
		ReleaseDate: d.ReleaseDate.Date,
		Developer:   strings.Join(d.Developers, ", "),
		Publisher:   strings.Join(d.Publishers, ", "),
	}
	if d.PriceOverview != nil {
		cents := d.PriceOverview.Final
		if cents == 0 {
			cents = d.PriceOverview.Initial
		}
		details.Price = float64(cents) / 100.0
	}
	details.IsFree = details.IsFree || details.Price == 0
	for _, g := range d.Genres {
		details.Genres = append(details.Genres, g.Description)
	}
	for _, cat := range d.Categories {
		details.Categories = append(details.Categories, cat.Description)
	}
	return details, nil
}

// ReviewsFor fetches the review summary for an app, nil when the app has no
// reviews yet
func (c *Client) ReviewsFor(ctx context.Context, appID int64) (*ReviewSummary, error) {
	reqURL := fmt.Sprintf("%s/appreviews/%d?json=1&language=all&review_type=all&purchase_type=all&num_per_page=0",
		c.storeBase, appID)

	var payload struct {
		Success      int `json:"success"`
		QuerySummary struct {
			TotalReviews    int    `json:"total_reviews"`
			TotalPositive   int    `json:"total_positive"`
			ReviewScoreDesc string `json:"review_score_desc"`
		} `json:"query_summary"`
	}
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		return nil, fmt.Errorf("fetch reviews for %d: %w", appID, err)
	}

	if payload.Success != 1 || payload.QuerySummary.TotalReviews == 0 {
		return nil, nil
	}
	qs := payload.QuerySummary
	return &ReviewSummary{
		TotalReviews:    qs.TotalReviews,
		PositiveReviews: qs.TotalPositive,
		RatingPercent:   qs.TotalPositive * 100 / qs.TotalReviews,
		Summary:         qs.ReviewScoreDesc,
	}, nil
}

// DetailsBatch fetches details and reviews for a set of apps with bounded
// concurrency. Individual failures degrade to empty results, the import
// should not die because one store page is flaky.
func (c *Client) DetailsBatch(ctx context.Context, appIDs []int64) (map[int64]Details, error) {
	results := make(map[int64]Details, len(appIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(10)

	for _, appID := range appIDs {
		g.Go(func() error {
			details, err := c.AppDetailsFor(ctx, appID)
			if err != nil {
				details = nil // non-critical
			}
			reviews, err := c.ReviewsFor(ctx, appID)
			if err != nil {
				reviews = nil
			}
			mu.Lock()
			results[appID] = Details{App: details, Reviews: reviews}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// getJSON performs a rate-limited GET and decodes the JSON body
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// sanitize strips markup and entities from store-provided text
func (c *Client) sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(s)))
}
