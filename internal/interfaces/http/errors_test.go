package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
)

// Every domain sentinel a use case can return has exactly one mapping arm;
// anything unrecognized falls through to a 500 without leaking detail.
func TestRespondError_SentinelMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION_ERROR"},
		{"wrapped validation", fmt.Errorf("%w: weights must sum to 100", domain.ErrValidation), fiber.StatusBadRequest, "VALIDATION_ERROR"},
		{"email taken", domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_TAKEN"},
		{"invalid transition", domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
		{"account pending", domain.ErrAccountPending, fiber.StatusForbidden, "ACCOUNT_PENDING"},
		{"account rejected", domain.ErrAccountRejected, fiber.StatusForbidden, "ACCOUNT_REJECTED"},
		{"account inactive", domain.ErrAccountInactive, fiber.StatusForbidden, "ACCOUNT_INACTIVE"},
		{"unauthorized", domain.ErrUnauthorized, fiber.StatusForbidden, "FORBIDDEN"},
		{"not found", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"user not found", domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"unknown", fmt.Errorf("pool exhausted"), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body dto.ErrorResponse
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tc.wantCode, body.Code)
			if tc.wantCode == "INTERNAL_ERROR" {
				assert.NotContains(t, body.Message, "pool exhausted",
					"internal detail must not reach the client")
			}
		})
	}
}
