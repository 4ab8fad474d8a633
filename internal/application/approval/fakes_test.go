package approval_test

import (
	"context"
	"sort"
	"time"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/workflow"
)

// In-memory fakes implementing the repository ports. They mirror the
// conditional-update semantics of the SQL layer so race-sensitive paths
// (DecideStatusIf, AdvanceStatusIf, RejectIf) behave like production.

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
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
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
	sortUsers(out)
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
	sortUsers(out)
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
	sortUsers(out)
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

func sortUsers(users []*entity.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].FullName < users[j].FullName })
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
	c, ok := r.claims[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
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
	c.UpdatedAt = time.Now()
	return true, nil
}

func (r *fakeClaimRepo) RejectIf(_ context.Context, id, expectedStatus, reason string) (bool, error) {
	c, ok := r.claims[id]
	if !ok || c.Status != expectedStatus {
		return false, nil
	}
	c.Status = workflow.ClaimRejected.String()
	c.RejectionReason = reason
	c.UpdatedAt = time.Now()
	return true, nil
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
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
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
