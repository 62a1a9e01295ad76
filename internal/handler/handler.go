// Package handler orchestrates user actions: each handler issues at most
// one backend call and resolves it into an ActionResult the page shell
// applies — a region update, notifications, and dialog/scroll effects.
package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"movie-discovery-web-ui/internal/backend"
	"movie-discovery-web-ui/internal/middleware"
	"movie-discovery-web-ui/internal/models"
	"movie-discovery-web-ui/internal/notify"
	"movie-discovery-web-ui/internal/session"
	"movie-discovery-web-ui/internal/view"
)

// Handler holds the UI orchestration endpoints.
type Handler struct {
	backend *backend.Client
}

// New creates a Handler backed by the given API client.
func New(client *backend.Client) *Handler {
	return &Handler{backend: client}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StructValidator adapts go-playground/validator to fiber's binder so
// request structs are validated on Bind.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator creates the validator used in fiber.Config.
func NewStructValidator() *StructValidator {
	return &StructValidator{validate: validator.New()}
}

// Validate implements fiber.StructValidator.
func (v *StructValidator) Validate(out any) error {
	return v.validate.Struct(out)
}

const msgNetworkError = "Network error. Please try again."

// Health returns service health status.
func (h *Handler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "web-ui",
	})
}

// result finalizes an ActionResult: session view attached, pending
// notifications drained exactly once.
func result(sess *session.Session, r models.ActionResult) models.ActionResult {
	r.Session = sess.View()
	r.Notifications = sess.Notifications.Drain()
	return r
}

// warn short-circuits an action with a warning notification and no
// backend call.
func warn(c fiber.Ctx, sess *session.Session, message string, r models.ActionResult) error {
	sess.Notifications.Push(message, notify.LevelWarning)
	return c.JSON(result(sess, r))
}

// failureMessage picks the notification text for a failed call: the
// server's declared message when present, the per-action fallback for a
// declared failure without one, and the generic network message otherwise.
func failureMessage(err error, fallback string) string {
	if msg, ok := backend.DeclaredMessage(err); ok {
		return msg
	}
	if backend.IsDeclared(err) {
		return fallback
	}
	return msgNetworkError
}

// regionFailure builds an in-region error state for a failed fetch.
func regionFailure(err error, declaredMsg string) *models.RegionUpdate {
	msg := declaredMsg
	if !backend.IsDeclared(err) {
		msg = "Network error"
	}
	return &models.RegionUpdate{State: models.RegionError, Message: msg}
}

// listUpdate maps a raw movie list into a region update, distinguishing an
// empty response from one whose every record lacked a valid poster.
func listUpdate(raws []models.MovieRaw, title string) *models.RegionUpdate {
	if len(raws) == 0 {
		return &models.RegionUpdate{State: models.RegionEmpty, Message: "No movies found"}
	}
	movies := view.FilterRenderable(raws)
	if len(movies) == 0 {
		return &models.RegionUpdate{State: models.RegionEmpty, Message: "No movies with posters found"}
	}
	return &models.RegionUpdate{State: models.RegionContent, Title: title, Movies: movies}
}

// loggedOutUpdate is the personalized region's placeholder state.
func loggedOutUpdate() *models.RegionUpdate {
	return &models.RegionUpdate{
		State:   models.RegionEmpty,
		Message: "Please login to see personalized recommendations",
	}
}

func sessionFrom(c fiber.Ctx) *session.Session {
	return middleware.SessionFrom(c)
}
