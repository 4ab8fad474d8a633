package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/approval"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/auth"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/usecase"
)

// RouterDeps collects everything the router needs.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	RegistrationUC *approval.RegistrationUseCase
	ClaimUC        *approval.ClaimUseCase
	ProjectUC      *usecase.ProjectUseCase
	TaskUC         *usecase.TaskUseCase
	TeamUC         *usecase.TeamUseCase
	DashboardUC    *usecase.DashboardUseCase
	JWTSecret      string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public). Managers is public too so the signup form can offer
	// the line-manager dropdown before an account exists.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/managers", authHandler.Managers)

	// Protected routes (require Bearer token).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Registration approvals (protected). The use case re-checks the
	// caller against fresh data; the route gate only filters obvious
	// non-approvers early.
	registrations := protected.Group("/registrations")
	registrationHandler := NewRegistrationHandler(deps.RegistrationUC)
	registrations.Get("/pending", registrationHandler.ListPending)
	registrations.Post("/:id/approve", registrationHandler.Approve)
	registrations.Post("/:id/reject", registrationHandler.Reject)

	// Expense claims (protected)
	claims := protected.Group("/claims")
	claimHandler := NewClaimHandler(deps.ClaimUC)
	claims.Post("/", claimHandler.Create)
	claims.Get("/mine", claimHandler.ListMine)
	claims.Get("/queue", claimHandler.ListAwaitingAction)
	claims.Post("/:id/approve", claimHandler.Approve)
	claims.Post("/:id/reject", claimHandler.Reject)

	// Projects (protected)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Post("/:id/pillars/sync", projectHandler.SyncPillars)

	// Tasks (protected)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/options/projects", taskHandler.AssignableProjects)
	tasks.Get("/options/assignees", taskHandler.EligibleAssignees)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	// Team directory (protected)
	teamHandler := NewTeamHandler(deps.TeamUC)
	protected.Get("/team", teamHandler.List)

	// Dashboard (protected)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
