package handler

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"movie-discovery-web-ui/internal/backend"
	"movie-discovery-web-ui/internal/models"
	"movie-discovery-web-ui/internal/notify"
	"movie-discovery-web-ui/internal/session"
	"movie-discovery-web-ui/internal/view"
)

// Moods returns the fixed mood grid the shell renders its buttons from.
func (h *Handler) Moods(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"moods": models.Moods})
}

// Mood fetches mood-based recommendations into the mood region. Requires a
// logged-in session; otherwise the auth dialog is opened instead.
func (h *Handler) Mood(c fiber.Ctx) error {
	sess := sessionFrom(c)

	var req models.MoodRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid mood request"})
	}
	if !models.ValidMoods[req.Mood] {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "unknown mood"})
	}

	if _, ok := sess.CurrentUser(); !ok {
		sess.ShowAuth(session.AuthLogin)
		return warn(c, sess, "Please login to get mood-based recommendations", models.ActionResult{
			OpenDialog: "auth",
		})
	}

	token := sess.Begin(models.RegionMood)
	raws, err := h.backend.MoodRecommendations(c.Context(), sess.BackendAuth(), req.Mood)
	if !sess.Commit(models.RegionMood, token) {
		return c.JSON(result(sess, models.ActionResult{Stale: true}))
	}
	if err != nil {
		slog.Error("mood recommendations failed", "mood", req.Mood, "error", err)
		return c.JSON(result(sess, models.ActionResult{
			Region: models.RegionMood,
			Update: regionFailure(err, "Failed to load recommendations"),
		}))
	}

	title := "Movies for " + req.Mood + " mood"
	return c.JSON(result(sess, models.ActionResult{
		Region:   models.RegionMood,
		Update:   listUpdate(raws, title),
		ScrollTo: models.RegionMood,
	}))
}

// Recommendations fetches the personalized list. Logged-out sessions get
// the placeholder state without a backend call.
func (h *Handler) Recommendations(c fiber.Ctx) error {
	sess := sessionFrom(c)

	if _, ok := sess.CurrentUser(); !ok {
		return c.JSON(result(sess, models.ActionResult{
			Region: models.RegionRecommendations,
			Update: loggedOutUpdate(),
		}))
	}

	token := sess.Begin(models.RegionRecommendations)
	raws, err := h.backend.Recommendations(c.Context(), sess.BackendAuth())
	if !sess.Commit(models.RegionRecommendations, token) {
		return c.JSON(result(sess, models.ActionResult{Stale: true}))
	}
	if err != nil {
		slog.Error("recommendations failed", "error", err)
		return c.JSON(result(sess, models.ActionResult{
			Region: models.RegionRecommendations,
			Update: regionFailure(err, "Failed to load recommendations"),
		}))
	}

	return c.JSON(result(sess, models.ActionResult{
		Region: models.RegionRecommendations,
		Update: listUpdate(raws, "Recommended for You"),
	}))
}

// Trending fetches the trending list for a day window and ranks the
// renderable entries.
func (h *Handler) Trending(c fiber.Ctx) error {
	sess := sessionFrom(c)

	days := fiber.Query(c, "days", 7)
	if days <= 0 {
		days = 7
	}

	token := sess.Begin(models.RegionTrending)
	raws, err := h.backend.Trending(c.Context(), days)
	if !sess.Commit(models.RegionTrending, token) {
		return c.JSON(result(sess, models.ActionResult{Stale: true}))
	}
	if err != nil {
		slog.Error("trending failed", "days", days, "error", err)
		update := regionFailure(err, "Failed to load trending movies")
		update.ActiveDays = days
		return c.JSON(result(sess, models.ActionResult{
			Region: models.RegionTrending,
			Update: update,
		}))
	}

	update := listUpdate(raws, fmt.Sprintf("Trending (last %d days)", days))
	update.ActiveDays = days
	if update.State == models.RegionContent {
		update.Ranked = view.RankTrending(raws)
		update.Movies = nil
	}
	return c.JSON(result(sess, models.ActionResult{
		Region: models.RegionTrending,
		Update: update,
	}))
}

// Search runs a title search and writes the results into the
// recommendations region. A blank query short-circuits with a warning.
func (h *Handler) Search(c fiber.Ctx) error {
	sess := sessionFrom(c)

	query := strings.TrimSpace(fiber.Query(c, "q", ""))
	if query == "" {
		return warn(c, sess, "Please enter a search term", models.ActionResult{})
	}

	token := sess.Begin(models.RegionRecommendations)
	raws, err := h.backend.Search(c.Context(), query)
	if !sess.Commit(models.RegionRecommendations, token) {
		return c.JSON(result(sess, models.ActionResult{Stale: true}))
	}
	if err != nil {
		slog.Error("search failed", "query", query, "error", err)
		msg := "Search failed"
		if !backend.IsDeclared(err) {
			msg = msgNetworkError
		}
		sess.Notifications.Push(msg, notify.LevelError)
		return c.JSON(result(sess, models.ActionResult{}))
	}

	return c.JSON(result(sess, models.ActionResult{
		Region:   models.RegionRecommendations,
		Update:   listUpdate(raws, fmt.Sprintf("Search results for %q", query)),
		ScrollTo: models.RegionRecommendations,
	}))
}

// MovieDetail loads the detail modal for one movie.
func (h *Handler) MovieDetail(c fiber.Ctx) error {
	sess := sessionFrom(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie id"})
	}

	token := sess.Begin(models.RegionModal)
	raw, err := h.backend.MovieDetail(c.Context(), id)
	if !sess.Commit(models.RegionModal, token) {
		return c.JSON(result(sess, models.ActionResult{Stale: true}))
	}
	if err != nil {
		slog.Error("movie detail failed", "movie_id", id, "error", err)
		return c.JSON(result(sess, models.ActionResult{
			Region:     models.RegionModal,
			Update:     regionFailure(err, "Failed to load movie details"),
			OpenDialog: "movie",
		}))
	}

	detail := view.ToMovieDetail(raw.Movie, raw.Sentiment, raw.Similar)
	return c.JSON(result(sess, models.ActionResult{
		Region:     models.RegionModal,
		Update:     &models.RegionUpdate{State: models.RegionContent, Detail: &detail},
		OpenDialog: "movie",
	}))
}

// Rate submits a 1-10 rating for a movie. Requires login.
func (h *Handler) Rate(c fiber.Ctx) error {
	sess := sessionFrom(c)

	var req models.RateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return warn(c, sess, "Rating must be between 1 and 10", models.ActionResult{})
	}

	if _, ok := sess.CurrentUser(); !ok {
		sess.ShowAuth(session.AuthLogin)
		return warn(c, sess, "Please login to rate movies", models.ActionResult{
			OpenDialog: "auth",
		})
	}

	if err := h.backend.Rate(c.Context(), sess.BackendAuth(), req.MovieID, req.Rating); err != nil {
		slog.Error("rate failed", "movie_id", req.MovieID, "error", err)
		sess.Notifications.Push(failureMessage(err, "Failed to save rating"), notify.LevelError)
		return c.JSON(result(sess, models.ActionResult{}))
	}

	sess.Notifications.Push(fmt.Sprintf("Rated %d/10!", req.Rating), notify.LevelSuccess)
	return c.JSON(result(sess, models.ActionResult{
		Refresh: []string{models.RegionRecommendations},
	}))
}

// WatchHistory marks a movie as watched. Requires login.
func (h *Handler) WatchHistory(c fiber.Ctx) error {
	sess := sessionFrom(c)

	var req models.WatchHistoryRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie id"})
	}

	if _, ok := sess.CurrentUser(); !ok {
		sess.ShowAuth(session.AuthLogin)
		return warn(c, sess, "Please login to track watch history", models.ActionResult{
			OpenDialog: "auth",
		})
	}

	if err := h.backend.AddWatchHistory(c.Context(), sess.BackendAuth(), req.MovieID); err != nil {
		slog.Error("watch history failed", "movie_id", req.MovieID, "error", err)
		sess.Notifications.Push(failureMessage(err, "Failed to add to history"), notify.LevelError)
		return c.JSON(result(sess, models.ActionResult{}))
	}

	sess.Notifications.Push("Added to watch history!", notify.LevelSuccess)
	return c.JSON(result(sess, models.ActionResult{}))
}
