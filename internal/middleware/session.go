package middleware

import (
	"github.com/gofiber/fiber/v3"

	"movie-discovery-web-ui/internal/session"
)

// SessionCookie is the cookie carrying the UI session id.
const SessionCookie = "webui_session"

const sessionKey = "ui_session"

// Session resolves the browser session from its cookie, creating a fresh
// session (and setting the cookie) when none exists or it has expired.
func Session(store *session.Store) fiber.Handler {
	return func(c fiber.Ctx) error {
		var sess *session.Session
		if id := c.Cookies(SessionCookie); id != "" {
			if s, ok := store.Get(id); ok {
				sess = s
			}
		}
		if sess == nil {
			sess = store.Create()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID(),
				Path:     "/",
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
		c.Locals(sessionKey, sess)
		return c.Next()
	}
}

// SessionFrom returns the session resolved by the Session middleware.
func SessionFrom(c fiber.Ctx) *session.Session {
	sess, _ := c.Locals(sessionKey).(*session.Session)
	return sess
}
