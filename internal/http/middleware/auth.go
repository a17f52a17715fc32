package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"plantmon/internal/model"
	"plantmon/internal/service"
)

// UserLocalKey is the key used to store the authenticated user in Fiber's
// context locals.
const UserLocalKey = "auth_user"

type authErrorBody struct {
	RequestID string          `json:"request_id"`
	Error     authErrorDetail `json:"error"`
}

type authErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Authenticate resolves the bearer token on the request into the user it was
// issued to and stores that user in context locals under UserLocalKey.
// Requests without a valid token get 401 with a WWW-Authenticate challenge.
func Authenticate(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return challenge(c)
		}

		user, err := auth.VerifyToken(c.UserContext(), token)
		if err != nil {
			return challenge(c)
		}

		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}

// RequireRoles rejects requests whose authenticated user carries none of the
// given roles. It must run after Authenticate.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := c.Locals(UserLocalKey).(*model.User)
		if user == nil {
			return challenge(c)
		}
		if !user.HasAnyRole(roles...) {
			// Historically role failures report 401, not 403.
			return writeAuthError(c, fiber.StatusUnauthorized, "FORBIDDEN_ROLE",
				"You do not have access to send request to this endpoint.")
		}
		return c.Next()
	}
}

// bearerToken extracts the credential from an Authorization header value.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func challenge(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return writeAuthError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Could not validate credentials")
}

func writeAuthError(c *fiber.Ctx, status int, code, message string) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return c.Status(status).JSON(authErrorBody{
		RequestID: rid,
		Error:     authErrorDetail{Code: code, Message: message},
	})
}
