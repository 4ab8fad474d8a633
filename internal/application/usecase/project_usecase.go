package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/authz"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
)

// ProjectTxRunner runs a callback with project and pillar repositories bound
// to one transaction (project creation writes the project row and its initial
// pillar set atomically). Implemented by postgres.TxRunner.
type ProjectTxRunner interface {
	Run(ctx context.Context, fn func(projects repository.ProjectRepository, pillars repository.PillarRepository) error) error
}

// defaultPillarTemplate is applied when a project is created without pillars.
var defaultPillarTemplate = []dto.PillarInput{
	{Title: "Project Management & Coordination", Weight: 20},
	{Title: "Field Research & Data Collection", Weight: 30},
	{Title: "Analysis & Reporting", Weight: 30},
	{Title: "Presentation & Dissemination", Weight: 20},
}

// ProjectUseCase project CRUD and pillar-set maintenance.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	pillarRepo  repository.PillarRepository
	userRepo    repository.UserRepository
	tx          ProjectTxRunner
}

// NewProjectUseCase builds the project use case.
func NewProjectUseCase(projectRepo repository.ProjectRepository, pillarRepo repository.PillarRepository, userRepo repository.UserRepository, tx ProjectTxRunner) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo, pillarRepo: pillarRepo, userRepo: userRepo, tx: tx}
}

// Create creates a project led by the caller, with the given pillar set (or
// the default template). Pillar weights must sum to exactly 100 before any
// row is written.
func (uc *ProjectUseCase) Create(ctx context.Context, callerID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	pillars := in.Pillars
	if len(pillars) == 0 {
		pillars = defaultPillarTemplate
	}
	if err := validatePillarWeights(pillars); err != nil {
		return nil, err
	}

	project := &entity.Project{
		ID:             uuid.New().String(),
		Title:          in.Title,
		Description:    in.Description,
		Status:         entity.ProjectStatusActive,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		DriveFolderURL: in.DriveFolderURL,
		LeadID:         caller.ID,
		CreatedAt:      time.Now(),
	}

	err = uc.tx.Run(ctx, func(projects repository.ProjectRepository, pillarRows repository.PillarRepository) error {
		if err := projects.Create(ctx, project); err != nil {
			return err
		}
		for _, p := range pillars {
			row := &entity.ProjectPillar{
				ID:        uuid.New().String(),
				ProjectID: project.ID,
				Title:     p.Title,
				Weight:    p.Weight,
				CreatedAt: time.Now(),
			}
			if err := pillarRows.Create(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, project.ID)
}

// GetByID returns a project with its non-archived pillars.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	pillars, err := uc.pillarRepo.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project, pillars), nil
}

// List returns all projects.
func (uc *ProjectUseCase) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, *toProjectResponse(p, nil))
	}
	return out, nil
}

// Update edits project fields. Only the lead or a Super User may edit.
func (uc *ProjectUseCase) Update(ctx context.Context, callerID, projectID string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, err
	}
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanManageProject(caller, project) {
		return nil, domain.ErrUnauthorized
	}
	switch in.Status {
	case entity.ProjectStatusActive, entity.ProjectStatusCompleted, entity.ProjectStatusOnHold:
	default:
		return nil, fmt.Errorf("%w: unknown project status %q", domain.ErrValidation, in.Status)
	}

	project.Title = in.Title
	project.Description = in.Description
	project.Status = in.Status
	project.StartDate = in.StartDate
	project.EndDate = in.EndDate
	project.DriveFolderURL = in.DriveFolderURL
	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, projectID)
}

// SyncPillars replaces a project's pillar set. Weights are validated to sum
// to 100 before any write. Rows are committed one by one (the store gives
// per-row atomicity only); failures are reported per row instead of aborting
// the batch. Existing pillars missing from the submitted set are archived,
// never deleted, so tasks referencing them stay valid.
func (uc *ProjectUseCase) SyncPillars(ctx context.Context, callerID, projectID string, in dto.SyncPillarsRequest) (*dto.PillarSyncResult, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, err
	}
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanManageProject(caller, project) {
		return nil, domain.ErrUnauthorized
	}
	if err := validatePillarWeights(in.Pillars); err != nil {
		return nil, err
	}

	existing, err := uc.pillarRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	existingByID := make(map[string]*entity.ProjectPillar, len(existing))
	for _, p := range existing {
		existingByID[p.ID] = p
	}

	result := &dto.PillarSyncResult{}
	submitted := map[string]bool{}
	for _, p := range in.Pillars {
		if p.ID != "" {
			submitted[p.ID] = true
		}
		if row, ok := existingByID[p.ID]; ok {
			row.Title = p.Title
			row.Weight = p.Weight
			if err := uc.pillarRepo.Update(ctx, row); err != nil {
				result.Failed = append(result.Failed, dto.RowError{ID: p.ID, Title: p.Title, Error: err.Error()})
				continue
			}
		} else {
			row := &entity.ProjectPillar{
				ID:        uuid.New().String(),
				ProjectID: projectID,
				Title:     p.Title,
				Weight:    p.Weight,
				CreatedAt: time.Now(),
			}
			if err := uc.pillarRepo.Create(ctx, row); err != nil {
				result.Failed = append(result.Failed, dto.RowError{Title: p.Title, Error: err.Error()})
				continue
			}
		}
		result.Synced++
	}

	for _, p := range existing {
		if submitted[p.ID] {
			continue
		}
		if err := uc.pillarRepo.Archive(ctx, p.ID); err != nil {
			result.Failed = append(result.Failed, dto.RowError{ID: p.ID, Title: p.Title, Error: err.Error()})
			continue
		}
		result.Archived++
	}
	return result, nil
}

// validatePillarWeights rejects the set unless weights sum to exactly 100.
func validatePillarWeights(pillars []dto.PillarInput) error {
	total := 0
	for _, p := range pillars {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("%w: pillar title is required", domain.ErrValidation)
		}
		if p.Weight <= 0 {
			return fmt.Errorf("%w: pillar weight must be positive", domain.ErrValidation)
		}
		total += p.Weight
	}
	if total != 100 {
		return fmt.Errorf("%w: pillar weights must sum to 100, got %d", domain.ErrValidation, total)
	}
	return nil
}

func (uc *ProjectUseCase) loadActive(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != entity.UserStatusActive {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func toProjectResponse(p *entity.Project, pillars []*entity.ProjectPillar) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Status:         p.Status,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		DriveFolderURL: p.DriveFolderURL,
		LeadID:         p.LeadID,
		CreatedAt:      p.CreatedAt,
	}
	for _, pl := range pillars {
		resp.Pillars = append(resp.Pillars, dto.PillarResponse{ID: pl.ID, Title: pl.Title, Weight: pl.Weight})
	}
	return resp
}
