// Package backend is the typed client for the movie recommendation API.
// Every method maps to exactly one endpoint and resolves to one of three
// outcomes: success, declared failure (*APIError), or transport failure.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"movie-discovery-web-ui/internal/models"
)

const (
	requestTimeout = 15 * time.Second

	trendingCacheTTL = 5 * time.Minute
	searchCacheSize  = 512
	searchCacheTTL   = 10 * time.Minute
)

// Client calls the backend REST API. An auth value, where required, is the
// backend session cookie captured at login and held by the UI session.
type Client struct {
	baseURL string
	http    *http.Client
	rdb     *redis.Client
	search  *ttlCache[[]models.MovieRaw]
	detail  singleflight.Group
}

// NewClient creates a backend client. rdb may be nil; caching then degrades
// to pass-through.
func NewClient(baseURL string, rdb *redis.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		rdb:    rdb,
		search: newTTLCache[[]models.MovieRaw](searchCacheSize, searchCacheTTL),
	}
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/signup", "", req, nil)
}

// Login authenticates and returns the user plus the backend session cookie
// to forward on subsequent authenticated calls.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.UserRaw, string, error) {
	resp, err := c.send(ctx, http.MethodPost, "/login", "", req)
	if err != nil {
		return models.UserRaw{}, "", err
	}
	defer resp.Body.Close()

	var body struct {
		User models.UserRaw `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.UserRaw{}, "", fmt.Errorf("decode login response: %w", err)
	}

	var pairs []string
	for _, ck := range resp.Cookies() {
		pairs = append(pairs, ck.Name+"="+ck.Value)
	}
	return body.User, strings.Join(pairs, "; "), nil
}

// Logout ends the backend session.
func (c *Client) Logout(ctx context.Context, auth string) error {
	return c.do(ctx, http.MethodPost, "/logout", auth, nil, nil)
}

// Preferences fetches the stored preference set. Users who never saved
// preferences get an empty object, which decodes to the zero value.
func (c *Client) Preferences(ctx context.Context, auth string) (models.PreferencesRaw, error) {
	var prefs models.PreferencesRaw
	err := c.do(ctx, http.MethodGet, "/api/preferences", auth, nil, &prefs)
	return prefs, err
}

// SavePreferences stores a preference set.
func (c *Client) SavePreferences(ctx context.Context, auth string, req models.PreferencesRequest) error {
	return c.do(ctx, http.MethodPost, "/api/preferences", auth, req, nil)
}

// MoodRecommendations fetches recommendations for a mood tag.
func (c *Client) MoodRecommendations(ctx context.Context, auth, mood string) ([]models.MovieRaw, error) {
	var body struct {
		Recommendations []models.MovieRaw `json:"recommendations"`
	}
	err := c.do(ctx, http.MethodPost, "/api/recommendations/mood", auth,
		map[string]string{"mood": mood}, &body)
	return body.Recommendations, err
}

// Recommendations fetches personalized recommendations for the session user.
func (c *Client) Recommendations(ctx context.Context, auth string) ([]models.MovieRaw, error) {
	var body struct {
		Recommendations []models.MovieRaw `json:"recommendations"`
	}
	err := c.do(ctx, http.MethodGet, "/api/recommendations", auth, nil, &body)
	return body.Recommendations, err
}

// Trending fetches the trending list for a days window. Responses are
// cached in Redis per window since trending is identical across sessions.
func (c *Client) Trending(ctx context.Context, days int) ([]models.MovieRaw, error) {
	cacheKey := fmt.Sprintf("webui:trending:%d", days)
	if cached, ok := c.getCachedMovies(ctx, cacheKey); ok {
		slog.Debug("trending cache hit", "days", days)
		return cached, nil
	}

	var body struct {
		Trending []models.MovieRaw `json:"trending"`
	}
	path := "/api/recommendations/trending?days=" + strconv.Itoa(days)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &body); err != nil {
		return nil, err
	}

	c.setCachedMovies(ctx, cacheKey, body.Trending)
	return body.Trending, nil
}

// Search looks up movies by title. Results are cached in-process keyed by
// the normalized query.
func (c *Client) Search(ctx context.Context, query string) ([]models.MovieRaw, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if cached, ok := c.search.Get(key); ok {
		slog.Debug("search cache hit", "query", key)
		return cached, nil
	}

	var body struct {
		Results []models.MovieRaw `json:"results"`
	}
	path := "/api/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &body); err != nil {
		return nil, err
	}

	c.search.Set(key, body.Results)
	return body.Results, nil
}

// MovieDetail fetches the full detail payload for one movie. Concurrent
// requests for the same movie are collapsed into a single backend call.
func (c *Client) MovieDetail(ctx context.Context, movieID int) (models.MovieDetailRaw, error) {
	// The shared fetch must not die with whichever caller started it;
	// the client timeout still bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	val, err, _ := c.detail.Do(strconv.Itoa(movieID), func() (any, error) {
		var detail models.MovieDetailRaw
		path := "/api/movies/" + strconv.Itoa(movieID)
		if err := c.do(fetchCtx, http.MethodGet, path, "", nil, &detail); err != nil {
			return models.MovieDetailRaw{}, err
		}
		return detail, nil
	})
	if err != nil {
		return models.MovieDetailRaw{}, err
	}
	return val.(models.MovieDetailRaw), nil
}

// Rate submits a rating for a movie.
func (c *Client) Rate(ctx context.Context, auth string, movieID, rating int) error {
	return c.do(ctx, http.MethodPost, "/api/rate", auth,
		map[string]int{"movie_id": movieID, "rating": rating}, nil)
}

// AddWatchHistory marks a movie as watched.
func (c *Client) AddWatchHistory(ctx context.Context, auth string, movieID int) error {
	return c.do(ctx, http.MethodPost, "/api/watch-history", auth,
		map[string]int{"movie_id": movieID}, nil)
}

// do issues a request and decodes a successful JSON response into out.
func (c *Client) do(ctx context.Context, method, path, auth string, body, out any) error {
	resp, err := c.send(ctx, method, path, auth, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

// send issues a request and maps non-2xx responses to *APIError. The caller
// owns the response body on success.
func (c *Client) send(ctx context.Context, method, path, auth string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build backend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Cookie", auth)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to backend: %w", err)
	}

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		var declared struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &declared)
		return nil, &APIError{Status: resp.StatusCode, Message: declared.Error}
	}
	return resp, nil
}

// Redis cache helpers

func (c *Client) getCachedMovies(ctx context.Context, key string) ([]models.MovieRaw, bool) {
	if c.rdb == nil {
		return nil, false
	}
	cached, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var movies []models.MovieRaw
	if json.Unmarshal([]byte(cached), &movies) != nil {
		return nil, false
	}
	return movies, true
}

func (c *Client) setCachedMovies(ctx context.Context, key string, movies []models.MovieRaw) {
	if c.rdb == nil {
		return
	}
	data, err := json.Marshal(movies)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, trendingCacheTTL).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}
