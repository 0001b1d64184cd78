package services

import (
	"context"

	"jobapply_backend/internal/auth"
	"jobapply_backend/internal/logger"
	"jobapply_backend/internal/models"
	"jobapply_backend/internal/repositories"
	"jobapply_backend/internal/services/dto"
	"jobapply_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService backs the dashboard sign-in. There are no applicant
// accounts; only admins and reviewers authenticate.
type AuthService interface {
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetSession(ctx context.Context, db *gorm.DB, userID string) (*dto.SessionResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same error as a wrong password: don't leak which part failed.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID, "role", string(user.Role))

	return &dto.LoginResponse{
		AccessToken: token,
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
	}, nil
}

// GetSession resolves the authenticated user plus their display
// profile. A missing profile degrades to the bare user record.
func (s *authService) GetSession(ctx context.Context, db *gorm.DB, userID string) (*dto.SessionResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	session := &dto.SessionResponse{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	profile, err := s.userRepo.FindProfileByUserID(db, userID)
	if err == nil {
		session.FullName = profile.FullName
	}

	return session, nil
}
