package usecase

import (
	"context"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
)

// TeamUseCase the team directory.
type TeamUseCase struct {
	userRepo repository.UserRepository
}

// NewTeamUseCase builds the team use case.
func NewTeamUseCase(userRepo repository.UserRepository) *TeamUseCase {
	return &TeamUseCase{userRepo: userRepo}
}

// List returns all Active users with their line manager's name resolved.
func (uc *TeamUseCase) List(ctx context.Context, callerID string) ([]dto.TeamMember, error) {
	caller, err := uc.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller == nil || caller.Status != entity.UserStatusActive {
		return nil, domain.ErrUnauthorized
	}

	users, err := uc.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	out := make([]dto.TeamMember, 0, len(users))
	for _, u := range users {
		member := dto.TeamMember{
			ID:         u.ID,
			FullName:   u.FullName,
			Email:      u.Email,
			Role:       u.Role,
			Department: u.Department,
		}
		if m, ok := byID[u.LineManagerID]; ok {
			member.LineManagerName = m.FullName
		}
		out = append(out, member)
	}
	return out, nil
}
