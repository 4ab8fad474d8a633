package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/approval"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/authz"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
)

// DashboardUseCase aggregates the landing-page counters. The four reads are
// independent, so they run concurrently.
type DashboardUseCase struct {
	projectRepo  repository.ProjectRepository
	taskRepo     repository.TaskRepository
	userRepo     repository.UserRepository
	registration *approval.RegistrationUseCase
	claims       *approval.ClaimUseCase
}

// NewDashboardUseCase builds the dashboard use case.
func NewDashboardUseCase(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository, registration *approval.RegistrationUseCase, claims *approval.ClaimUseCase) *DashboardUseCase {
	return &DashboardUseCase{
		projectRepo:  projectRepo,
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		registration: registration,
		claims:       claims,
	}
}

// Summary returns the caller's headline counters.
func (uc *DashboardUseCase) Summary(ctx context.Context, callerID string) (*dto.DashboardSummary, error) {
	caller, err := uc.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller == nil || caller.Status != entity.UserStatusActive {
		return nil, domain.ErrUnauthorized
	}

	var out dto.DashboardSummary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		projects, err := uc.projectRepo.ListByStatus(gctx, entity.ProjectStatusActive)
		if err != nil {
			return err
		}
		out.ActiveProjects = len(projects)
		return nil
	})
	g.Go(func() error {
		n, err := uc.taskRepo.CountOpenAssignedTo(gctx, callerID)
		if err != nil {
			return err
		}
		out.MyOpenTasks = n
		return nil
	})
	g.Go(func() error {
		if !authz.IsManagerTier(caller) {
			return nil
		}
		pending, err := uc.registration.ListPending(gctx, callerID)
		if err != nil {
			return err
		}
		out.PendingRegistrations = len(pending)
		return nil
	})
	g.Go(func() error {
		if !authz.IsFinanceApprover(caller) {
			return nil
		}
		awaiting, err := uc.claims.ListAwaitingAction(gctx, callerID)
		if err != nil {
			return err
		}
		out.ClaimsAwaitingAction = len(awaiting)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
