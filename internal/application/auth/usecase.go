package auth

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registration and login. Registration always creates the account
// in Pending status; the registration approval flow activates it.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register creates a Pending account. The line manager is mandatory and must
// be an Active manager-tier user; the requested role is stored as-is and may
// be overridden at approval time.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleRegularUser
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	if in.LineManagerID == "" {
		return nil, fmt.Errorf("%w: line manager is required", domain.ErrValidation)
	}

	manager, err := uc.userRepo.GetByID(ctx, in.LineManagerID)
	if err != nil {
		return nil, err
	}
	if manager == nil || manager.Status != entity.UserStatusActive ||
		(manager.Role != entity.RoleManager && manager.Role != entity.RoleSuperUser) {
		return nil, fmt.Errorf("%w: line manager must be an active Manager or Super User", domain.ErrValidation)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:            uuid.New().String(),
		Email:         in.Email,
		PasswordHash:  string(hash),
		FullName:      in.FullName,
		Role:          role,
		Department:    in.Department,
		Phone:         in.Phone,
		Status:        entity.UserStatusPending,
		LineManagerID: in.LineManagerID,
		CreatedAt:     time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifies credentials, refuses any non-Active account with a
// status-specific error, stamps last_login, and returns a JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	switch user.Status {
	case entity.UserStatusActive:
	case entity.UserStatusPending:
		return nil, domain.ErrAccountPending
	case entity.UserStatusRejected:
		return nil, domain.ErrAccountRejected
	default:
		return nil, domain.ErrAccountInactive
	}

	if err := uc.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.Department, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// Me returns the caller's profile.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// Managers lists Active manager-tier users for the signup form's line-manager
// dropdown.
func (uc *AuthUseCase) Managers(ctx context.Context) ([]dto.ManagerOption, error) {
	users, err := uc.userRepo.ListActiveByRoles(ctx, entity.RoleManager, entity.RoleSuperUser)
	if err != nil {
		return nil, err
	}
	opts := make([]dto.ManagerOption, 0, len(users))
	for _, u := range users {
		opts = append(opts, dto.ManagerOption{ID: u.ID, FullName: u.FullName, Role: u.Role})
	}
	return opts, nil
}

// validatePassword enforces the signup policy: at least 8 characters with an
// uppercase letter, a digit, and a special character.
func validatePassword(pwd string) error {
	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range pwd {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsNumber(r):
			hasSpecial = true
		}
	}
	if len(pwd) < 8 || !hasUpper || !hasDigit || !hasSpecial {
		return fmt.Errorf("%w: password must have at least 8 characters, 1 uppercase, 1 number and 1 special character", domain.ErrValidation)
	}
	return nil
}

// ToUserResponse maps a user entity to its API shape.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		Role:          u.Role,
		Department:    u.Department,
		Phone:         u.Phone,
		Status:        u.Status,
		LineManagerID: u.LineManagerID,
		CreatedAt:     u.CreatedAt,
		LastLogin:     u.LastLogin,
	}
}
