package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-discovery-web-ui/internal/models"
)

func TestLoginCapturesSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)

		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123"})
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": models.UserRaw{ID: 7, Username: "ada", Email: "ada@example.com"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	user, auth, err := c.Login(context.Background(), models.LoginRequest{
		Email: "ada@example.com", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "session=abc123", auth)
}

func TestLoginDeclaredFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, _, err := c.Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "no"})
	require.Error(t, err)

	msg, ok := DeclaredMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials", msg)
	assert.True(t, IsDeclared(err))
}

func TestDeclaredFailureWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	err := c.Rate(context.Background(), "session=abc", 5, 8)
	require.Error(t, err)
	assert.True(t, IsDeclared(err))

	_, ok := DeclaredMessage(err)
	assert.False(t, ok, "no server message to surface")
}

func TestTransportFailure(t *testing.T) {
	// Nothing listening here.
	c := NewClient("http://127.0.0.1:1", nil)
	_, err := c.Recommendations(context.Background(), "")
	require.Error(t, err)
	assert.False(t, IsDeclared(err))
}

func TestAuthCookieForwarded(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		_ = json.NewEncoder(w).Encode(map[string]any{"recommendations": []models.MovieRaw{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Recommendations(context.Background(), "session=abc123")
	require.NoError(t, err)
	assert.Equal(t, "session=abc123", gotCookie)
}

func TestSearchCachesResults(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "inception", r.URL.Query().Get("q"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []models.MovieRaw{{ID: 1, Title: "Inception", PosterURL: "http://x/p.jpg"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)

	first, err := c.Search(context.Background(), "inception")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Same normalized query is served from cache.
	second, err := c.Search(context.Background(), "  Inception ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestTrendingWithoutRedisPassesThrough(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"trending": []models.MovieRaw{{ID: 2, Title: "T", PosterURL: "http://x/t.jpg"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	for i := 0; i < 2; i++ {
		movies, err := c.Trending(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, movies, 1)
	}
	assert.Equal(t, 2, calls, "no redis, no caching")
}

func TestMovieDetailDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/movies/42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.MovieDetailRaw{
			Movie:     models.MovieRaw{ID: 42, Title: "Detail", PosterURL: "http://x/p.jpg"},
			Sentiment: &models.SentimentRaw{OverallSentiment: "positive", PositiveCount: 3},
			Similar:   []models.MovieRaw{{ID: 1, Title: "S", PosterURL: "http://x/s.jpg"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	detail, err := c.MovieDetail(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, detail.Movie.ID)
	require.NotNil(t, detail.Sentiment)
	assert.Equal(t, 3, detail.Sentiment.PositiveCount)
	require.Len(t, detail.Similar, 1)
}

func TestMovieDetailSurvivesCallerCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.MovieDetailRaw{
			Movie: models.MovieRaw{ID: 42, Title: "Detail", PosterURL: "http://x/p.jpg"},
		})
	}))
	defer srv.Close()

	// The fetch is shared across deduped callers, so one caller's cancel
	// must not fail it.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, nil)
	detail, err := c.MovieDetail(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, detail.Movie.ID)
}

func TestPreferencesEmptyObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	prefs, err := c.Preferences(context.Background(), "session=abc")
	require.NoError(t, err)
	assert.Empty(t, prefs.FavoriteGenres)
	assert.Empty(t, prefs.PreferredLanguages)
}
