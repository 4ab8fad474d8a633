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

// TaskUseCase task CRUD and the assignment/visibility filters. The filters
// are recomputed on every call: reporting lines change between sessions and
// nothing here is a stored permission.
type TaskUseCase struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	pillarRepo  repository.PillarRepository
	userRepo    repository.UserRepository
}

// NewTaskUseCase builds the task use case.
func NewTaskUseCase(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, pillarRepo repository.PillarRepository, userRepo repository.UserRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo, projectRepo: projectRepo, pillarRepo: pillarRepo, userRepo: userRepo}
}

// VisibleProjectsForAssignment returns the Active projects the caller may
// create tasks in: a Super User sees all of them; anyone else sees projects
// they lead plus projects led by a Super User. A Manager cannot assign into
// another ordinary Manager's project.
func (uc *TaskUseCase) VisibleProjectsForAssignment(ctx context.Context, callerID string) ([]dto.ProjectOption, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.ListByStatus(ctx, entity.ProjectStatusActive)
	if err != nil {
		return nil, err
	}

	leadRoles := map[string]string{}
	out := make([]dto.ProjectOption, 0, len(projects))
	for _, p := range projects {
		if !authz.IsSuperUser(caller) {
			if p.LeadID != caller.ID {
				role, ok := leadRoles[p.LeadID]
				if !ok {
					if lead, err := uc.userRepo.GetByID(ctx, p.LeadID); err == nil && lead != nil {
						role = lead.Role
					}
					leadRoles[p.LeadID] = role
				}
				if role != entity.RoleSuperUser {
					continue
				}
			}
		}
		out = append(out, dto.ProjectOption{ID: p.ID, Title: p.Title})
	}
	return out, nil
}

// EligibleAssignees returns the users the caller may assign tasks to: every
// Active user for a Super User, only direct reports for anyone else.
func (uc *TaskUseCase) EligibleAssignees(ctx context.Context, callerID string) ([]dto.AssigneeOption, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, err
	}
	var users []*entity.User
	if authz.IsSuperUser(caller) {
		users, err = uc.userRepo.ListActive(ctx)
	} else {
		users, err = uc.userRepo.ListActiveReportsOf(ctx, caller.ID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssigneeOption, 0, len(users))
	for _, u := range users {
		out = append(out, dto.AssigneeOption{ID: u.ID, FullName: u.FullName})
	}
	return out, nil
}

// Create creates a task in a project visible to the caller, with assignees
// drawn from the caller's eligible set.
func (uc *TaskUseCase) Create(ctx context.Context, callerID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	project, err := uc.projectRepo.GetByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkProjectAssignable(ctx, caller, project); err != nil {
		return nil, err
	}
	if err := uc.checkAssignees(ctx, caller, in.AssigneeIDs); err != nil {
		return nil, err
	}
	if in.PillarID != "" {
		if err := uc.checkPillar(ctx, in.ProjectID, in.PillarID); err != nil {
			return nil, err
		}
	}
	status := in.Status
	if status == "" {
		status = entity.TaskStatusTodo
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}
	if !entity.ValidTaskStatus(status) || !entity.ValidTaskPriority(priority) {
		return nil, fmt.Errorf("%w: invalid task status or priority", domain.ErrValidation)
	}

	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		ProjectID:   in.ProjectID,
		PillarID:    in.PillarID,
		AssigneeIDs: in.AssigneeIDs,
		CreatedBy:   caller.ID,
		Status:      status,
		Priority:    priority,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return uc.toTaskResponse(ctx, caller, task), nil
}

// List returns tasks for the given filter: "all", "my" (assigned to caller)
// or "created" (created by caller).
func (uc *TaskUseCase) List(ctx context.Context, callerID, filter string) ([]dto.TaskResponse, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, err
	}
	var tasks []*entity.Task
	switch filter {
	case "my":
		tasks, err = uc.taskRepo.ListAssignedTo(ctx, caller.ID)
	case "created":
		tasks, err = uc.taskRepo.ListCreatedBy(ctx, caller.ID)
	default:
		tasks, err = uc.taskRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *uc.toTaskResponse(ctx, caller, t))
	}
	return out, nil
}

// Update edits a task. Allowed for Super User, the project lead, any
// assignee, or the creator; status changes follow the same rule.
func (uc *TaskUseCase) Update(ctx context.Context, callerID, taskID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	caller, task, project, err := uc.loadTask(ctx, callerID, taskID)
	if err != nil {
		return nil, err
	}
	if !authz.CanEditTask(caller, task, project) {
		return nil, domain.ErrUnauthorized
	}
	if !entity.ValidTaskStatus(in.Status) || !entity.ValidTaskPriority(in.Priority) {
		return nil, fmt.Errorf("%w: invalid task status or priority", domain.ErrValidation)
	}
	if in.PillarID != "" && in.PillarID != task.PillarID {
		if err := uc.checkPillar(ctx, task.ProjectID, in.PillarID); err != nil {
			return nil, err
		}
	}
	if added := newAssignees(task.AssigneeIDs, in.AssigneeIDs); len(added) > 0 {
		if err := uc.checkAssignees(ctx, caller, added); err != nil {
			return nil, err
		}
	}

	task.Title = in.Title
	task.Description = in.Description
	task.PillarID = in.PillarID
	task.AssigneeIDs = in.AssigneeIDs
	task.Status = in.Status
	task.Priority = in.Priority
	task.DueDate = in.DueDate
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return uc.toTaskResponse(ctx, caller, task), nil
}

// Delete removes a task. An assignee alone may edit but not delete.
func (uc *TaskUseCase) Delete(ctx context.Context, callerID, taskID string) error {
	caller, task, project, err := uc.loadTask(ctx, callerID, taskID)
	if err != nil {
		return err
	}
	if !authz.CanDeleteTask(caller, task, project) {
		return domain.ErrUnauthorized
	}
	return uc.taskRepo.Delete(ctx, taskID)
}

// checkProjectAssignable mirrors VisibleProjectsForAssignment for one project.
func (uc *TaskUseCase) checkProjectAssignable(ctx context.Context, caller *entity.User, project *entity.Project) error {
	if project.Status != entity.ProjectStatusActive {
		return fmt.Errorf("%w: project is not active", domain.ErrValidation)
	}
	if authz.IsSuperUser(caller) || project.LeadID == caller.ID {
		return nil
	}
	lead, err := uc.userRepo.GetByID(ctx, project.LeadID)
	if err != nil {
		return err
	}
	if lead == nil || lead.Role != entity.RoleSuperUser {
		return domain.ErrUnauthorized
	}
	return nil
}

// newAssignees returns the IDs in next that are not already in current.
// Keeping an existing assignee never needs re-vetting; adding one does.
func newAssignees(current, next []string) []string {
	existing := make(map[string]struct{}, len(current))
	for _, id := range current {
		existing[id] = struct{}{}
	}
	var added []string
	for _, id := range next {
		if _, ok := existing[id]; !ok {
			added = append(added, id)
		}
	}
	return added
}

// checkAssignees verifies every assignee is in the caller's eligible set.
func (uc *TaskUseCase) checkAssignees(ctx context.Context, caller *entity.User, assigneeIDs []string) error {
	if len(assigneeIDs) == 0 {
		return nil
	}
	for _, id := range assigneeIDs {
		assignee, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if assignee == nil || assignee.Status != entity.UserStatusActive {
			return fmt.Errorf("%w: assignee %s is not an active user", domain.ErrValidation, id)
		}
		if !authz.IsSuperUser(caller) && !authz.IsDirectReportOf(assignee, caller) {
			return domain.ErrUnauthorized
		}
	}
	return nil
}

func (uc *TaskUseCase) checkPillar(ctx context.Context, projectID, pillarID string) error {
	pillars, err := uc.pillarRepo.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	for _, p := range pillars {
		if p.ID == pillarID {
			return nil
		}
	}
	return fmt.Errorf("%w: pillar does not belong to the project", domain.ErrValidation)
}

func (uc *TaskUseCase) loadTask(ctx context.Context, callerID, taskID string) (*entity.User, *entity.Task, *entity.Project, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, nil, nil, err
	}
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, nil, nil, err
	}
	if task == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	project, err := uc.projectRepo.GetByID(ctx, task.ProjectID)
	if err != nil {
		return nil, nil, nil, err
	}
	return caller, task, project, nil
}

func (uc *TaskUseCase) loadActive(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != entity.UserStatusActive {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func (uc *TaskUseCase) toTaskResponse(ctx context.Context, caller *entity.User, t *entity.Task) *dto.TaskResponse {
	project, _ := uc.projectRepo.GetByID(ctx, t.ProjectID)
	return &dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		ProjectID:   t.ProjectID,
		PillarID:    t.PillarID,
		AssigneeIDs: t.AssigneeIDs,
		CreatedBy:   t.CreatedBy,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CanEdit:     authz.CanEditTask(caller, t, project),
		CanDelete:   authz.CanDeleteTask(caller, t, project),
	}
}
