package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/approval"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
)

// RegistrationHandler exposes the pending-registration approval queue.
type RegistrationHandler struct {
	uc *approval.RegistrationUseCase
}

func NewRegistrationHandler(uc *approval.RegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{uc: uc}
}

// ListPending godoc
// @Summary      Pending registrations the caller may decide
// @Tags         registrations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/registrations/pending [get]
func (h *RegistrationHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.uc.ListPending(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Approve a pending registration, optionally overriding the role
// @Tags         registrations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "User ID"
// @Param        body  body  dto.DecideRegistrationRequest  false  "Optional role override"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/registrations/{id}/approve [post]
func (h *RegistrationHandler) Approve(c *fiber.Ctx) error {
	var in dto.DecideRegistrationRequest
	// Body is optional on approve; a missing body means keep the
	// self-selected role.
	_ = c.BodyParser(&in)
	out, err := h.uc.Decide(c.Context(), GetUserID(c), c.Params("id"), "approve", in.Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Reject a pending registration
// @Tags         registrations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/registrations/{id}/reject [post]
func (h *RegistrationHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Decide(c.Context(), GetUserID(c), c.Params("id"), "reject", "")
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
