package usecase_test

import (
	"context"
	"time"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/usecase"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/workflow"
)

// In-memory fakes for the ports this package depends on.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByStatus(_ context.Context, status string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Status == status {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListActiveByRoles(_ context.Context, roles ...string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Status != entity.UserStatusActive {
			continue
		}
		for _, role := range roles {
			if u.Role == role {
				cp := *u
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListActiveReportsOf(_ context.Context, managerID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Status == entity.UserStatusActive && u.LineManagerID == managerID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListActive(_ context.Context) ([]*entity.User, error) {
	return r.ListByStatus(context.Background(), entity.UserStatusActive)
}

func (r *fakeUserRepo) DecideStatusIf(_ context.Context, id, expectedStatus, newStatus, overrideRole string) (bool, error) {
	u, ok := r.users[id]
	if !ok || u.Status != expectedStatus {
		return false, nil
	}
	u.Status = newStatus
	if overrideRole != "" {
		u.Role = overrideRole
	}
	return true, nil
}

func (r *fakeUserRepo) TouchLastLogin(_ context.Context, id string) error {
	if u, ok := r.users[id]; ok {
		now := time.Now()
		u.LastLogin = &now
	}
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func newFakeProjectRepo(projects ...*entity.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: map[string]*entity.Project{}}
	for _, p := range projects {
		cp := *p
		r.projects[p.ID] = &cp
	}
	return r
}

func (r *fakeProjectRepo) Create(_ context.Context, p *entity.Project) error {
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	if p, ok := r.projects[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *entity.Project) error {
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) List(_ context.Context) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.projects {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProjectRepo) ListByStatus(_ context.Context, status string) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.projects {
		if p.Status == status {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakePillarRepo struct {
	pillars map[string]*entity.ProjectPillar
}

func newFakePillarRepo(pillars ...*entity.ProjectPillar) *fakePillarRepo {
	r := &fakePillarRepo{pillars: map[string]*entity.ProjectPillar{}}
	for _, p := range pillars {
		cp := *p
		r.pillars[p.ID] = &cp
	}
	return r
}

func (r *fakePillarRepo) Create(_ context.Context, p *entity.ProjectPillar) error {
	cp := *p
	r.pillars[p.ID] = &cp
	return nil
}

func (r *fakePillarRepo) Update(_ context.Context, p *entity.ProjectPillar) error {
	existing, ok := r.pillars[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Title = p.Title
	existing.Weight = p.Weight
	return nil
}

func (r *fakePillarRepo) ListByProject(_ context.Context, projectID string) ([]*entity.ProjectPillar, error) {
	var out []*entity.ProjectPillar
	for _, p := range r.pillars {
		if p.ProjectID == projectID && !p.Archived {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePillarRepo) Archive(_ context.Context, id string) error {
	p, ok := r.pillars[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Archived = true
	return nil
}

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	if t, ok := r.tasks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) List(_ context.Context) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTaskRepo) ListAssignedTo(_ context.Context, userID string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.HasAssignee(userID) {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListCreatedBy(_ context.Context, userID string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.CreatedBy == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) CountOpenAssignedTo(_ context.Context, userID string) (int, error) {
	n := 0
	for _, t := range r.tasks {
		if t.HasAssignee(userID) && t.Status != entity.TaskStatusDone {
			n++
		}
	}
	return n, nil
}

type fakeClaimRepo struct {
	claims map[string]*entity.ExpenseClaim
}

func newFakeClaimRepo() *fakeClaimRepo {
	return &fakeClaimRepo{claims: map[string]*entity.ExpenseClaim{}}
}

func (r *fakeClaimRepo) Create(_ context.Context, c *entity.ExpenseClaim) error {
	cp := *c
	r.claims[c.ID] = &cp
	return nil
}

func (r *fakeClaimRepo) GetByID(_ context.Context, id string) (*entity.ExpenseClaim, error) {
	if c, ok := r.claims[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeClaimRepo) ListByOwner(_ context.Context, userID string) ([]*entity.ExpenseClaim, error) {
	var out []*entity.ExpenseClaim
	for _, c := range r.claims {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeClaimRepo) ListPendingNotOwnedBy(_ context.Context, userID string) ([]*entity.ExpenseClaim, error) {
	var out []*entity.ExpenseClaim
	for _, c := range r.claims {
		if c.UserID != userID && workflow.ClaimStatus(c.Status).IsPending() {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeClaimRepo) AdvanceStatusIf(_ context.Context, id, expectedStatus, newStatus string) (bool, error) {
	c, ok := r.claims[id]
	if !ok || c.Status != expectedStatus {
		return false, nil
	}
	c.Status = newStatus
	return true, nil
}

func (r *fakeClaimRepo) RejectIf(_ context.Context, id, expectedStatus, reason string) (bool, error) {
	c, ok := r.claims[id]
	if !ok || c.Status != expectedStatus {
		return false, nil
	}
	c.Status = workflow.ClaimRejected.String()
	c.RejectionReason = reason
	return true, nil
}

// fakeTxRunner hands the same repositories to the callback; the tests do not
// exercise rollback.
type fakeTxRunner struct {
	projects repository.ProjectRepository
	pillars  repository.PillarRepository
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProjectRepository, repository.PillarRepository) error) error {
	return fn(r.projects, r.pillars)
}

var _ usecase.ProjectTxRunner = (*fakeTxRunner)(nil)
