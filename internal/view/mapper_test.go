package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-discovery-web-ui/internal/models"
)

func TestToMovieSummaryPosterValidity(t *testing.T) {
	tests := []struct {
		name      string
		posterURL string
		want      bool
	}{
		{"https url", "https://img.example.com/p.jpg", true},
		{"http url", "http://img.example.com/p.jpg", true},
		{"missing", "", false},
		{"blank", "   ", false},
		{"relative path", "/posters/p.jpg", false},
		{"other scheme", "ftp://img.example.com/p.jpg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := models.MovieRaw{ID: 1, Title: "X", PosterURL: tt.posterURL}
			_, ok := ToMovieSummary(raw)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestToMovieSummaryFormatting(t *testing.T) {
	raw := models.MovieRaw{
		ID:          5,
		Title:       "X",
		PosterURL:   "https://x/y.jpg",
		AvgRating:   8.25,
		ReleaseDate: "2020-05-01",
		Genres:      []string{"Drama", "War", "Epic"},
	}

	s, ok := ToMovieSummary(raw)
	require.True(t, ok)
	assert.Equal(t, 5, s.ID)
	assert.Equal(t, "8.3", s.RatingDisplay)
	require.NotNil(t, s.Year)
	assert.Equal(t, 2020, *s.Year)
	assert.Equal(t, "2020", s.YearDisplay)
	assert.Equal(t, []string{"Drama", "War"}, s.Genres)
	assert.Equal(t, "Drama, War", s.GenresDisplay)
}

func TestToMovieSummaryDefaults(t *testing.T) {
	raw := models.MovieRaw{ID: 2, Title: "Y", PosterURL: "http://x/p.jpg"}

	s, ok := ToMovieSummary(raw)
	require.True(t, ok)
	assert.Equal(t, "N/A", s.RatingDisplay)
	assert.Nil(t, s.Year)
	assert.Equal(t, "N/A", s.YearDisplay)
	assert.Empty(t, s.Genres)
	assert.Equal(t, "", s.GenresDisplay)
}

func TestToMovieSummaryMalformedReleaseDate(t *testing.T) {
	// Malformed dates fall back to N/A silently.
	for _, date := range []string{"soon", "20", "abcd-01-01"} {
		s, ok := ToMovieSummary(models.MovieRaw{
			ID: 3, Title: "Z", PosterURL: "http://x/p.jpg", ReleaseDate: date,
		})
		require.True(t, ok)
		assert.Nil(t, s.Year, "date %q", date)
		assert.Equal(t, "N/A", s.YearDisplay)
	}
}

func TestFilterRenderableOrderAndLength(t *testing.T) {
	raws := []models.MovieRaw{
		{ID: 1, Title: "A", PosterURL: "http://x/a.jpg"},
		{ID: 2, Title: "B", PosterURL: ""},
		{ID: 3, Title: "C", PosterURL: "https://x/c.jpg"},
		{ID: 4, Title: "D", PosterURL: "not-a-url"},
		{ID: 5, Title: "E", PosterURL: "http://x/e.jpg"},
	}

	got := FilterRenderable(raws)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestFilterRenderableEmptyInput(t *testing.T) {
	assert.Empty(t, FilterRenderable(nil))
	assert.Empty(t, FilterRenderable([]models.MovieRaw{{ID: 1, Title: "A"}}))
}

func TestRankTrendingAssignsRanksAfterFiltering(t *testing.T) {
	raws := []models.MovieRaw{
		{ID: 1, Title: "A", PosterURL: ""},
		{ID: 2, Title: "B", PosterURL: "http://x/b.jpg"},
		{ID: 3, Title: "C", PosterURL: "http://x/c.jpg"},
	}

	got := RankTrending(raws)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 2, got[1].Rank)
	assert.Equal(t, 3, got[1].ID)
}

func TestToSentimentSummary(t *testing.T) {
	assert.Nil(t, ToSentimentSummary(nil))
	assert.Nil(t, ToSentimentSummary(&models.SentimentRaw{OverallSentiment: "neutral"}))

	got := ToSentimentSummary(&models.SentimentRaw{
		OverallSentiment: "positive",
		PositiveCount:    7,
		NeutralCount:     2,
		NegativeCount:    1,
		TotalReviews:     10,
	})
	require.NotNil(t, got)
	assert.Equal(t, 7, got.PositiveCount)
	assert.Equal(t, "positive", got.OverallLabel)
	assert.Equal(t, "POSITIVE", got.OverallDisplay)
}

func TestToMovieDetailBackdropFallback(t *testing.T) {
	raw := models.MovieRaw{
		ID:        9,
		Title:     "F",
		PosterURL: "https://x/p.jpg",
	}

	d := ToMovieDetail(raw, nil, nil)
	assert.True(t, d.HasPoster)
	assert.Equal(t, "https://x/p.jpg", d.BackdropURL)

	raw.BackdropURL = "https://x/b.jpg"
	d = ToMovieDetail(raw, nil, nil)
	assert.Equal(t, "https://x/b.jpg", d.BackdropURL)
}

func TestToMovieDetailWithoutPoster(t *testing.T) {
	d := ToMovieDetail(models.MovieRaw{ID: 9, Title: "F"}, nil, nil)
	assert.False(t, d.HasPoster)
	assert.Equal(t, "", d.PosterURL)
	assert.Equal(t, "", d.BackdropURL)
}

func TestToMovieDetailCastAndDefaults(t *testing.T) {
	raw := models.MovieRaw{
		ID:    9,
		Title: "F",
		Cast:  []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	d := ToMovieDetail(raw, nil, nil)
	assert.Len(t, d.Cast, 5)
	assert.Equal(t, "a, b, c, d, e", d.CastDisplay)
	assert.Equal(t, "No overview available", d.Overview)
	assert.Equal(t, "N/A", d.Director)

	d = ToMovieDetail(models.MovieRaw{ID: 1, Title: "G"}, nil, nil)
	assert.Equal(t, "N/A", d.CastDisplay)
}

func TestToMovieDetailSimilarFiltered(t *testing.T) {
	similar := []models.MovieRaw{
		{ID: 1, Title: "A", PosterURL: "http://x/a.jpg"},
		{ID: 2, Title: "B"},
	}

	d := ToMovieDetail(models.MovieRaw{ID: 9, Title: "F"}, nil, similar)
	require.Len(t, d.Similar, 1)
	assert.Equal(t, 1, d.Similar[0].ID)
}

func TestPreferenceFormRoundTrip(t *testing.T) {
	saved := models.PreferencesRaw{
		FavoriteGenres:     []string{"Drama", "Sci-Fi"},
		PreferredLanguages: []string{"Korean"},
	}

	form := PreferenceForm(saved)
	require.Len(t, form.Genres, len(models.PreferenceGenres))
	require.Len(t, form.Languages, len(models.PreferenceLanguages))

	var checkedGenres, checkedLangs []string
	for _, item := range form.Genres {
		if item.Checked {
			checkedGenres = append(checkedGenres, item.Value)
		}
	}
	for _, item := range form.Languages {
		if item.Checked {
			checkedLangs = append(checkedLangs, item.Value)
		}
	}
	assert.Equal(t, []string{"Drama", "Sci-Fi"}, checkedGenres)
	assert.Equal(t, []string{"Korean"}, checkedLangs)
}

func TestPreferenceFormNeverSaved(t *testing.T) {
	// Backend returns an empty object for users without saved preferences.
	form := PreferenceForm(models.PreferencesRaw{})
	for _, item := range form.Genres {
		assert.False(t, item.Checked)
	}
	for _, item := range form.Languages {
		assert.False(t, item.Checked)
	}
}
