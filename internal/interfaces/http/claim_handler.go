package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/approval"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
)

// ClaimHandler serves expense-claim submission and the approval chain.
type ClaimHandler struct {
	uc *approval.ClaimUseCase
}

func NewClaimHandler(uc *approval.ClaimUseCase) *ClaimHandler {
	return &ClaimHandler{uc: uc}
}

// Create godoc
// @Summary      Submit an expense claim
// @Tags         claims
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClaimRequest  true  "Claim data"
// @Success      201   {object}  dto.ClaimResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/claims [post]
func (h *ClaimHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClaimRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Claims submitted by the caller
// @Tags         claims
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClaimResponse
// @Router       /api/claims/mine [get]
func (h *ClaimHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAwaitingAction godoc
// @Summary      Pending claims the caller can act on at their current stage
// @Tags         claims
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ClaimResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/claims/queue [get]
func (h *ClaimHandler) ListAwaitingAction(c *fiber.Ctx) error {
	out, err := h.uc.ListAwaitingAction(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Advance a claim to its next approval stage
// @Tags         claims
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Claim ID"
// @Success      200  {object}  dto.ClaimResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/claims/{id}/approve [post]
func (h *ClaimHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Advance(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Reject a pending claim with a reason
// @Tags         claims
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Claim ID"
// @Param        body  body  dto.RejectClaimRequest  true  "Rejection reason"
// @Success      200   {object}  dto.ClaimResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/claims/{id}/reject [post]
func (h *ClaimHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectClaimRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	out, err := h.uc.Reject(c.Context(), GetUserID(c), c.Params("id"), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
