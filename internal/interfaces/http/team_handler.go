package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/usecase"
)

// TeamHandler serves the active-member directory.
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// List godoc
// @Summary      Active team members with resolved line-manager names
// @Tags         team
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TeamMember
// @Router       /api/team [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
