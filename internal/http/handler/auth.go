package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"plantmon/internal/service"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges a username/password pair for a bearer token.
//
// @Summary Obtain an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "User credentials"
// @Success 200 {object} service.Token
// @Failure 400 {object} errorPayload
// @Router /GetAuth [post]
func Login(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "username and password are required")
		}

		token, err := authSvc.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			// The legacy contract reports bad credentials as 400.
			if errors.Is(err, service.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_CREDENTIALS", "Incorrect username or password")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(token)
	}
}
