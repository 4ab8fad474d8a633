package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/usecase"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
)

// Fixture: a super user leading one project, a manager leading another, a
// second manager with no project, and a report under the first manager.
func taskFixture(t *testing.T) (*usecase.TaskUseCase, *fakeTaskRepo) {
	t.Helper()
	users := newFakeUserRepo(
		&entity.User{ID: "super", Email: "su@x.test", FullName: "Super One", Role: entity.RoleSuperUser, Status: entity.UserStatusActive},
		&entity.User{ID: "mgr-a", Email: "a@x.test", FullName: "Manager A", Role: entity.RoleManager, Status: entity.UserStatusActive},
		&entity.User{ID: "mgr-b", Email: "b@x.test", FullName: "Manager B", Role: entity.RoleManager, Status: entity.UserStatusActive},
		&entity.User{ID: "rep-a", Email: "ra@x.test", FullName: "Report A", Role: entity.RoleRegularUser, Status: entity.UserStatusActive, LineManagerID: "mgr-a"},
		&entity.User{ID: "rep-inactive", Email: "ri@x.test", FullName: "Former Report", Role: entity.RoleRegularUser, Status: entity.UserStatusInactive, LineManagerID: "mgr-a"},
	)
	projects := newFakeProjectRepo(
		&entity.Project{ID: "p-super", Title: "Flagship", Status: entity.ProjectStatusActive, LeadID: "super"},
		&entity.Project{ID: "p-a", Title: "Survey A", Status: entity.ProjectStatusActive, LeadID: "mgr-a"},
		&entity.Project{ID: "p-done", Title: "Closed", Status: entity.ProjectStatusCompleted, LeadID: "mgr-a"},
	)
	pillars := newFakePillarRepo(
		&entity.ProjectPillar{ID: "pl-1", ProjectID: "p-a", Title: "Fieldwork", Weight: 100},
	)
	tasks := newFakeTaskRepo()
	return usecase.NewTaskUseCase(tasks, projects, pillars, users), tasks
}

// Assignment visibility: own projects plus superuser-led projects; completed
// projects never appear.
func TestTask_VisibleProjectsForAssignment(t *testing.T) {
	uc, _ := taskFixture(t)
	ctx := context.Background()

	titles := func(opts []dto.ProjectOption) map[string]bool {
		out := map[string]bool{}
		for _, o := range opts {
			out[o.ID] = true
		}
		return out
	}

	all, err := uc.VisibleProjectsForAssignment(ctx, "super")
	require.NoError(t, err)
	got := titles(all)
	assert.True(t, got["p-super"])
	assert.True(t, got["p-a"])
	assert.False(t, got["p-done"])

	mine, err := uc.VisibleProjectsForAssignment(ctx, "mgr-a")
	require.NoError(t, err)
	got = titles(mine)
	assert.True(t, got["p-a"], "own project")
	assert.True(t, got["p-super"], "superuser-led project is open to all")

	theirs, err := uc.VisibleProjectsForAssignment(ctx, "mgr-b")
	require.NoError(t, err)
	got = titles(theirs)
	assert.False(t, got["p-a"], "another manager's project is invisible")
	assert.True(t, got["p-super"])
}

func TestTask_EligibleAssignees(t *testing.T) {
	uc, _ := taskFixture(t)
	ctx := context.Background()

	forSuper, err := uc.EligibleAssignees(ctx, "super")
	require.NoError(t, err)
	assert.Len(t, forSuper, 4, "super user may assign any active user")

	forA, err := uc.EligibleAssignees(ctx, "mgr-a")
	require.NoError(t, err)
	require.Len(t, forA, 1, "only active direct reports")
	assert.Equal(t, "rep-a", forA[0].ID)

	forB, err := uc.EligibleAssignees(ctx, "mgr-b")
	require.NoError(t, err)
	assert.Empty(t, forB)
}

func TestTask_Create_DefaultsAndPillarCheck(t *testing.T) {
	uc, _ := taskFixture(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, "mgr-a", dto.CreateTaskRequest{
		Title:       "Collect baseline data",
		ProjectID:   "p-a",
		PillarID:    "pl-1",
		AssigneeIDs: []string{"rep-a"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusTodo, out.Status)
	assert.Equal(t, entity.TaskPriorityMedium, out.Priority)
	assert.Equal(t, "mgr-a", out.CreatedBy)
	assert.True(t, out.CanEdit)
	assert.True(t, out.CanDelete)

	// A pillar from a different project is refused.
	_, err = uc.Create(ctx, "super", dto.CreateTaskRequest{Title: "x", ProjectID: "p-super", PillarID: "pl-1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTask_Create_ProjectAndAssigneeGates(t *testing.T) {
	uc, _ := taskFixture(t)
	ctx := context.Background()

	// Another manager's project.
	_, err := uc.Create(ctx, "mgr-b", dto.CreateTaskRequest{Title: "x", ProjectID: "p-a"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Completed project.
	_, err = uc.Create(ctx, "mgr-a", dto.CreateTaskRequest{Title: "x", ProjectID: "p-done"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Assignee outside the caller's reporting line.
	_, err = uc.Create(ctx, "mgr-b", dto.CreateTaskRequest{Title: "x", ProjectID: "p-super", AssigneeIDs: []string{"rep-a"}})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Inactive assignee, even though they report to the caller.
	_, err = uc.Create(ctx, "mgr-a", dto.CreateTaskRequest{Title: "x", ProjectID: "p-a", AssigneeIDs: []string{"rep-inactive"}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Super user may assign anyone active anywhere.
	_, err = uc.Create(ctx, "super", dto.CreateTaskRequest{Title: "x", ProjectID: "p-a", AssigneeIDs: []string{"rep-a", "mgr-b"}})
	assert.NoError(t, err)
}

func TestTask_List_Filters(t *testing.T) {
	uc, _ := taskFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "mgr-a", dto.CreateTaskRequest{Title: "Assigned to report", ProjectID: "p-a", AssigneeIDs: []string{"rep-a"}})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "super", dto.CreateTaskRequest{Title: "Unassigned", ProjectID: "p-super"})
	require.NoError(t, err)

	all, err := uc.List(ctx, "rep-a", "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	my, err := uc.List(ctx, "rep-a", "my")
	require.NoError(t, err)
	require.Len(t, my, 1)
	assert.Equal(t, created.ID, my[0].ID)
	assert.True(t, my[0].CanEdit, "assignee may edit")
	assert.False(t, my[0].CanDelete, "assignee may not delete")

	mineCreated, err := uc.List(ctx, "mgr-a", "created")
	require.NoError(t, err)
	require.Len(t, mineCreated, 1)
	assert.Equal(t, created.ID, mineCreated[0].ID)
}

// Assignees added through Update pass the same eligibility gate as Create;
// assignees already on the task are kept without re-vetting.
func TestTask_Update_AddedAssigneeGate(t *testing.T) {
	uc, _ := taskFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "mgr-a", dto.CreateTaskRequest{Title: "Task", ProjectID: "p-a", AssigneeIDs: []string{"rep-a"}})
	require.NoError(t, err)

	base := dto.UpdateTaskRequest{
		Title:    "Task",
		Status:   entity.TaskStatusTodo,
		Priority: entity.TaskPriorityMedium,
	}

	// Adding someone outside the caller's reporting line is refused.
	in := base
	in.AssigneeIDs = []string{"rep-a", "mgr-b"}
	_, err = uc.Update(ctx, "mgr-a", created.ID, in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Adding an inactive user is refused even within the reporting line.
	in = base
	in.AssigneeIDs = []string{"rep-a", "rep-inactive"}
	_, err = uc.Update(ctx, "mgr-a", created.ID, in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Resubmitting the unchanged set stays allowed, including for the
	// assignee editing their own task.
	in = base
	in.AssigneeIDs = []string{"rep-a"}
	_, err = uc.Update(ctx, "rep-a", created.ID, in)
	assert.NoError(t, err)

	// Super user may add anyone active.
	in = base
	in.AssigneeIDs = []string{"rep-a", "mgr-b"}
	out, err := uc.Update(ctx, "super", created.ID, in)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"rep-a", "mgr-b"}, out.AssigneeIDs)
}

func TestTask_UpdateAndDelete_Permissions(t *testing.T) {
	uc, taskRepo := taskFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "mgr-a", dto.CreateTaskRequest{Title: "Task", ProjectID: "p-a", AssigneeIDs: []string{"rep-a"}})
	require.NoError(t, err)

	in := dto.UpdateTaskRequest{
		Title:       "Task",
		AssigneeIDs: []string{"rep-a"},
		Status:      entity.TaskStatusInProgress,
		Priority:    entity.TaskPriorityHigh,
	}

	// The assignee may move the status.
	out, err := uc.Update(ctx, "rep-a", created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusInProgress, out.Status)

	// An unrelated manager may not.
	_, err = uc.Update(ctx, "mgr-b", created.ID, in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	bad := in
	bad.Status = "Parked"
	_, err = uc.Update(ctx, "rep-a", created.ID, bad)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Delete: assignee refused, creator allowed.
	err = uc.Delete(ctx, "rep-a", created.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, uc.Delete(ctx, "mgr-a", created.ID))
	stored, err := taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = uc.Delete(ctx, "mgr-a", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
