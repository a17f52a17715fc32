package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"plantmon/internal/service"
	serviceMocks "plantmon/internal/service/mocks"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/GetAuth", Login(mockSvc))

	t.Run("success", func(t *testing.T) {
		token := &service.Token{AccessToken: "signed.jwt.here", TokenType: "bearer"}
		mockSvc.On("Login", mock.Anything, "gardener", "hunter2").Return(token, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/GetAuth", `{"username":"gardener","password":"hunter2"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.Token
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "signed.jwt.here", result.AccessToken)
		assert.Equal(t, "bearer", result.TokenType)
		mockSvc.AssertExpectations(t)
	})

	t.Run("bad credentials report 400", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "gardener", "wrong").
			Return(nil, service.ErrInvalidCredentials).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/GetAuth", `{"username":"gardener","password":"wrong"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
		assert.Equal(t, "Incorrect username or password", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing password", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/GetAuth", `{"username":"gardener"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/GetAuth", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "gardener", "hunter2").
			Return(nil, errors.New("db offline")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/GetAuth", `{"username":"gardener","password":"hunter2"}`))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
