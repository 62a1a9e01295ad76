package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-discovery-web-ui/internal/models"
	"movie-discovery-web-ui/internal/notify"
	"movie-discovery-web-ui/internal/session"
	"movie-discovery-web-ui/internal/view"
)

// LoadPreferences fetches saved preferences and opens the preferences
// dialog pre-checked against the catalog. A user who never saved gets an
// all-unchecked form.
func (h *Handler) LoadPreferences(c fiber.Ctx) error {
	sess := sessionFrom(c)

	if _, ok := sess.CurrentUser(); !ok {
		sess.ShowAuth(session.AuthLogin)
		return warn(c, sess, "Please login to set preferences", models.ActionResult{
			OpenDialog: "auth",
		})
	}

	saved, err := h.backend.Preferences(c.Context(), sess.BackendAuth())
	if err != nil {
		slog.Error("load preferences failed", "error", err)
		sess.Notifications.Push(failureMessage(err, "Failed to load preferences"), notify.LevelError)
		return c.JSON(result(sess, models.ActionResult{}))
	}

	return c.JSON(result(sess, models.ActionResult{
		Form:       view.PreferenceForm(saved),
		OpenDialog: "preferences",
	}))
}

// SavePreferences persists the submitted genre and language selections and
// refreshes the personalized region.
func (h *Handler) SavePreferences(c fiber.Ctx) error {
	sess := sessionFrom(c)

	var req models.PreferencesRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid preferences"})
	}

	if _, ok := sess.CurrentUser(); !ok {
		sess.ShowAuth(session.AuthLogin)
		return warn(c, sess, "Please login to set preferences", models.ActionResult{
			OpenDialog: "auth",
		})
	}

	if err := h.backend.SavePreferences(c.Context(), sess.BackendAuth(), req); err != nil {
		slog.Error("save preferences failed", "error", err)
		sess.Notifications.Push(failureMessage(err, "Failed to save preferences"), notify.LevelError)
		return c.JSON(result(sess, models.ActionResult{}))
	}

	sess.Notifications.Push("Preferences saved!", notify.LevelSuccess)
	return c.JSON(result(sess, models.ActionResult{
		CloseDialog: "preferences",
		Refresh:     []string{models.RegionRecommendations},
	}))
}
