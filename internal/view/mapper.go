// Package view maps raw backend payloads to render-ready view models.
// Everything here is pure and deterministic: no network, no session state.
package view

import (
	"math"
	"strconv"
	"strings"

	"movie-discovery-web-ui/internal/models"
)

const notAvailable = "N/A"

// summaryGenreLimit caps how many genres a movie card shows.
const summaryGenreLimit = 2

// detailCastLimit caps how many cast members the detail modal shows.
const detailCastLimit = 5

// validMediaURL reports whether u is usable as an image source. Cards only
// ever render real HTTP(S) URLs; there are no generated placeholders.
func validMediaURL(u string) bool {
	u = strings.TrimSpace(u)
	return u != "" && strings.HasPrefix(u, "http")
}

// ratingDisplay formats an average rating to one decimal place. Zero and
// negative values mean "not rated" and render as N/A.
func ratingDisplay(r float64) string {
	if r <= 0 {
		return notAvailable
	}
	return strconv.FormatFloat(math.Round(r*10)/10, 'f', 1, 64)
}

// yearOf extracts the release year from the first four digits of a
// YYYY-MM-DD date. Malformed dates yield nil and render as N/A.
func yearOf(releaseDate string) *int {
	if len(releaseDate) < 4 {
		return nil
	}
	y, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return nil
	}
	return &y
}

func yearDisplay(y *int) string {
	if y == nil {
		return notAvailable
	}
	return strconv.Itoa(*y)
}

// ToMovieSummary converts a raw movie record into a card view model. The
// second return is false when the record has no valid poster URL, in which
// case the record must be dropped, not rendered with a substitute image.
func ToMovieSummary(raw models.MovieRaw) (models.MovieSummary, bool) {
	if !validMediaURL(raw.PosterURL) {
		return models.MovieSummary{}, false
	}

	genres := raw.Genres
	if len(genres) > summaryGenreLimit {
		genres = genres[:summaryGenreLimit]
	}
	year := yearOf(raw.ReleaseDate)

	return models.MovieSummary{
		ID:            raw.ID,
		Title:         raw.Title,
		PosterURL:     raw.PosterURL,
		RatingDisplay: ratingDisplay(raw.AvgRating),
		Year:          year,
		YearDisplay:   yearDisplay(year),
		Genres:        genres,
		GenresDisplay: strings.Join(genres, ", "),
		Reason:        raw.Reason,
	}, true
}

// FilterRenderable maps raw records through ToMovieSummary and discards the
// ones without valid posters, preserving relative order. Callers must
// render a distinct "no results" message when the result is empty.
func FilterRenderable(raws []models.MovieRaw) []models.MovieSummary {
	out := make([]models.MovieSummary, 0, len(raws))
	for _, raw := range raws {
		if s, ok := ToMovieSummary(raw); ok {
			out = append(out, s)
		}
	}
	return out
}

// RankTrending filters raw records and assigns 1-based ranks by position
// after filtering.
func RankTrending(raws []models.MovieRaw) []models.RankedMovie {
	summaries := FilterRenderable(raws)
	out := make([]models.RankedMovie, len(summaries))
	for i, s := range summaries {
		out[i] = models.RankedMovie{Rank: i + 1, MovieSummary: s}
	}
	return out
}

// ToSentimentSummary converts the raw sentiment block. It returns nil when
// no reviews were counted; the section is omitted entirely in that case.
// The overall label is kept verbatim and upper-cased only for display.
func ToSentimentSummary(raw *models.SentimentRaw) *models.SentimentSummary {
	if raw == nil {
		return nil
	}
	if raw.PositiveCount+raw.NeutralCount+raw.NegativeCount <= 0 {
		return nil
	}
	return &models.SentimentSummary{
		PositiveCount:  raw.PositiveCount,
		NeutralCount:   raw.NeutralCount,
		NegativeCount:  raw.NegativeCount,
		OverallLabel:   raw.OverallSentiment,
		OverallDisplay: strings.ToUpper(raw.OverallSentiment),
	}
}

// ToMovieDetail builds the modal view model. The backdrop falls back to the
// poster when missing or invalid; when no valid poster exists the poster
// column is omitted from the layout rather than left blank.
func ToMovieDetail(raw models.MovieRaw, sentiment *models.SentimentRaw, similar []models.MovieRaw) models.MovieDetail {
	posterURL := ""
	if validMediaURL(raw.PosterURL) {
		posterURL = raw.PosterURL
	}
	backdropURL := posterURL
	if validMediaURL(raw.BackdropURL) {
		backdropURL = raw.BackdropURL
	}

	overview := raw.Overview
	if overview == "" {
		overview = "No overview available"
	}
	director := raw.Director
	if director == "" {
		director = notAvailable
	}

	cast := raw.Cast
	if len(cast) > detailCastLimit {
		cast = cast[:detailCastLimit]
	}
	castDisplay := strings.Join(cast, ", ")
	if castDisplay == "" {
		castDisplay = notAvailable
	}

	return models.MovieDetail{
		ID:            raw.ID,
		Title:         raw.Title,
		PosterURL:     posterURL,
		HasPoster:     posterURL != "",
		BackdropURL:   backdropURL,
		RatingDisplay: ratingDisplay(raw.AvgRating),
		YearDisplay:   yearDisplay(yearOf(raw.ReleaseDate)),
		Overview:      overview,
		Director:      director,
		Cast:          cast,
		CastDisplay:   castDisplay,
		Runtime:       raw.Runtime,
		Language:      raw.Language,
		Genres:        raw.Genres,
		Sentiment:     ToSentimentSummary(sentiment),
		Similar:       FilterRenderable(similar),
	}
}

// PreferenceForm builds the preferences dialog from the catalog and the
// server-returned saved set. A box is checked iff its value is a member of
// the saved set; there is no client-side merging.
func PreferenceForm(saved models.PreferencesRaw) *models.PreferenceForm {
	return &models.PreferenceForm{
		Genres:    checkItems(models.PreferenceGenres, saved.FavoriteGenres),
		Languages: checkItems(models.PreferenceLanguages, saved.PreferredLanguages),
	}
}

func checkItems(catalog, saved []string) []models.CheckItem {
	savedSet := make(map[string]bool, len(saved))
	for _, v := range saved {
		savedSet[v] = true
	}
	out := make([]models.CheckItem, len(catalog))
	for i, v := range catalog {
		out[i] = models.CheckItem{Value: v, Checked: savedSet[v]}
	}
	return out
}
