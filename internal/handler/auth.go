package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-discovery-web-ui/internal/models"
	"movie-discovery-web-ui/internal/notify"
	"movie-discovery-web-ui/internal/session"
)

// Signup registers a new account. On success the auth dialog switches to
// login mode so the user can sign in.
func (h *Handler) Signup(c fiber.Ctx) error {
	sess := sessionFrom(c)

	var req models.SignupRequest
	if err := c.Bind().JSON(&req); err != nil {
		return warn(c, sess, "Please fill in username, email and password", models.ActionResult{})
	}

	if err := h.backend.Signup(c.Context(), req); err != nil {
		slog.Error("signup failed", "error", err)
		sess.Notifications.Push(failureMessage(err, "Signup failed"), notify.LevelError)
		return c.JSON(result(sess, models.ActionResult{}))
	}

	sess.ShowAuth(session.AuthLogin)
	sess.Notifications.Push("Account created successfully! Please login.", notify.LevelSuccess)
	return c.JSON(result(sess, models.ActionResult{}))
}

// Login authenticates, stores the user in the session and closes the auth
// dialog. The shell refreshes personalized recommendations afterwards.
func (h *Handler) Login(c fiber.Ctx) error {
	sess := sessionFrom(c)

	var req models.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return warn(c, sess, "Please enter your email and password", models.ActionResult{})
	}

	user, auth, err := h.backend.Login(c.Context(), req)
	if err != nil {
		slog.Error("login failed", "error", err)
		sess.Notifications.Push(failureMessage(err, "Login failed"), notify.LevelError)
		return c.JSON(result(sess, models.ActionResult{}))
	}

	sess.Login(models.User(user), auth)
	sess.Notifications.Push("Welcome back, "+user.Username+"!", notify.LevelSuccess)
	return c.JSON(result(sess, models.ActionResult{
		CloseDialog: "auth",
		Refresh:     []string{models.RegionRecommendations},
	}))
}

// Logout ends the backend session, clears the UI session and resets the
// personalized region to its logged-out placeholder.
func (h *Handler) Logout(c fiber.Ctx) error {
	sess := sessionFrom(c)

	if err := h.backend.Logout(c.Context(), sess.BackendAuth()); err != nil {
		slog.Error("logout failed", "error", err)
		sess.Notifications.Push("Logout failed", notify.LevelError)
		return c.JSON(result(sess, models.ActionResult{}))
	}

	sess.Logout()
	sess.Notifications.Push("Logged out successfully", notify.LevelSuccess)
	return c.JSON(result(sess, models.ActionResult{
		Region: models.RegionRecommendations,
		Update: loggedOutUpdate(),
	}))
}

// ShowAuth opens the auth dialog in login or signup mode.
func (h *Handler) ShowAuth(c fiber.Ctx) error {
	sess := sessionFrom(c)

	var req models.ShowAuthRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid auth mode"})
	}

	sess.ShowAuth(session.AuthMode(req.Mode))
	return c.JSON(result(sess, models.ActionResult{OpenDialog: "auth"}))
}

// ToggleAuth flips the open auth dialog between login and signup.
func (h *Handler) ToggleAuth(c fiber.Ctx) error {
	sess := sessionFrom(c)
	sess.ToggleAuthMode()
	return c.JSON(result(sess, models.ActionResult{}))
}

// CloseAuth closes the auth dialog.
func (h *Handler) CloseAuth(c fiber.Ctx) error {
	sess := sessionFrom(c)
	sess.CloseAuth()
	return c.JSON(result(sess, models.ActionResult{CloseDialog: "auth"}))
}

// State reports session and auth state plus pending notifications; the
// shell calls it once on boot.
func (h *Handler) State(c fiber.Ctx) error {
	sess := sessionFrom(c)
	return c.JSON(result(sess, models.ActionResult{}))
}
