package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/usecase"
)

// TaskHandler serves task CRUD plus the option lists the task form needs.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "Task data"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List tasks with an optional visibility filter
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "all | my | created"  default(all)
// @Success      200  {array}  dto.TaskResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	filter := c.Query("filter", "all")
	out, err := h.uc.List(c.Context(), GetUserID(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a task
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Task ID"
// @Param        body  body  dto.UpdateTaskRequest  true  "Fields to update"
// @Success      200   {object}  dto.TaskResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Security     Bearer
// @Param        id  path  string  true  "Task ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignableProjects godoc
// @Summary      Projects the caller may create tasks under
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProjectOption
// @Router       /api/tasks/options/projects [get]
func (h *TaskHandler) AssignableProjects(c *fiber.Ctx) error {
	out, err := h.uc.VisibleProjectsForAssignment(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EligibleAssignees godoc
// @Summary      Users the caller may assign tasks to
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AssigneeOption
// @Router       /api/tasks/options/assignees [get]
func (h *TaskHandler) EligibleAssignees(c *fiber.Ctx) error {
	out, err := h.uc.EligibleAssignees(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
