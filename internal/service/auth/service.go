package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	auth.RefreshTokenRepository
	employee.EmployeeRepository

	jwtService    jwt.Service
	refreshExpiry time.Duration
	auditor       audit.Logger
	log           *slog.Logger

	now func() time.Time
}

func NewAuthService(
	tokenRepo auth.RefreshTokenRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	refreshExpiry time.Duration,
	auditor audit.Logger,
	log *slog.Logger,
) auth.AuthService {
	return &AuthServiceImpl{
		RefreshTokenRepository: tokenRepo,
		EmployeeRepository:     employeeRepo,
		jwtService:             jwtService,
		refreshExpiry:          refreshExpiry,
		auditor:                auditor,
		log:                    log,
		now:                    time.Now,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same error whether the account is unknown or the password is
		// wrong, so login cannot be used to probe for accounts.
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	pair, err := s.issueTokens(ctx, emp)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionLogin,
		ActorRef:   emp.ID,
		ActorName:  emp.FullName(),
		ActorRole:  string(emp.Role),
		EntityType: "employee",
		EntityRef:  emp.ID,
	})

	return auth.LoginResponse{
		Tokens:   pair,
		Employee: employee.ToResponse(emp),
	}, nil
}

// Refresh implements auth.AuthService. The window slides: the presented
// token is revoked and a new one is issued with a full expiry.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPair{}, err
	}

	stored, err := s.RefreshTokenRepository.GetByToken(ctx, req.RefreshToken)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if stored == nil || stored.Revoked() {
		return auth.TokenPair{}, auth.ErrRefreshTokenInvalid
	}

	now := s.now()
	if stored.Expired(now) {
		return auth.TokenPair{}, auth.ErrRefreshTokenExpired
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, stored.EmployeeRef)
	if err != nil {
		return auth.TokenPair{}, auth.ErrRefreshTokenInvalid
	}
	if !emp.IsActive {
		return auth.TokenPair{}, auth.ErrAccountInactive
	}

	if err := s.RefreshTokenRepository.Revoke(ctx, stored.ID, now); err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	pair, err := s.issueTokens(ctx, emp)
	if err != nil {
		return auth.TokenPair{}, err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionTokenRefresh,
		ActorRef:   emp.ID,
		ActorName:  emp.FullName(),
		ActorRole:  string(emp.Role),
		EntityType: "employee",
		EntityRef:  emp.ID,
	})

	return pair, nil
}

// Logout implements auth.AuthService. Unknown tokens are a no-op so
// logout is idempotent.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	stored, err := s.RefreshTokenRepository.GetByToken(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if stored == nil || stored.Revoked() {
		return nil
	}

	if err := s.RefreshTokenRepository.Revoke(ctx, stored.ID, s.now()); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionLogout,
		ActorRef:   stored.EmployeeRef,
		EntityType: "employee",
		EntityRef:  stored.EmployeeRef,
	})
	return nil
}

// LogoutAll implements auth.AuthService. Revokes every live refresh
// token the employee holds, ending all of their sessions.
func (s *AuthServiceImpl) LogoutAll(ctx context.Context, employeeRef string) error {
	if err := s.RefreshTokenRepository.RevokeAllForEmployee(ctx, employeeRef, s.now()); err != nil {
		return fmt.Errorf("failed to revoke employee tokens: %w", err)
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionLogout,
		ActorRef:   employeeRef,
		EntityType: "employee",
		EntityRef:  employeeRef,
		Detail:     map[string]any{"all_sessions": true},
	})
	return nil
}

// CleanupExpiredTokens implements auth.AuthService. Runs on a schedule.
func (s *AuthServiceImpl) CleanupExpiredTokens(ctx context.Context) error {
	deleted, err := s.RefreshTokenRepository.DeleteExpired(ctx, s.now())
	if err != nil {
		return fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	if deleted > 0 {
		s.log.InfoContext(ctx, "deleted expired refresh tokens", slog.Int64("count", deleted))
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, emp employee.Employee) (auth.TokenPair, error) {
	var deptRef *string
	if emp.DepartmentRef != "" {
		d := emp.DepartmentRef
		deptRef = &d
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(jwt.AccessClaims{
		UserID:        emp.ID,
		EmployeeID:    emp.EmployeeID,
		Name:          emp.FullName(),
		Role:          string(emp.Role),
		DepartmentRef: deptRef,
	})
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	now := s.now()
	refresh, err := s.RefreshTokenRepository.Create(ctx, auth.RefreshToken{
		Token:       uuid.New().String(),
		EmployeeRef: emp.ID,
		ExpiresAt:   now.Add(s.refreshExpiry),
		CreatedAt:   now,
	})
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		ExpiresIn:    expiresAt - now.Unix(),
	}, nil
}
