package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/juniperhealth/juniper_backend/config"
	"github.com/juniperhealth/juniper_backend/internal/repo"
	entpractice "github.com/juniperhealth/juniper_backend/internal/repo/practice"
	entstaff "github.com/juniperhealth/juniper_backend/internal/repo/staffmember"
	pasetotoken "github.com/juniperhealth/juniper_backend/pkg/paseto"
	"github.com/juniperhealth/juniper_backend/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	lockWindowMins   = 15
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// redisKeyLoginFails returns the Redis key for the failed-login counter.
func redisKeyLoginFails(staffID uuid.UUID) string { return "login:fails:" + staffID.String() }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	PracticeSlug string
	Email        string
	Password     string
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ChangePassword(ctx context.Context, staffID uuid.UUID, req ChangePasswordRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.PracticeSlug = strings.TrimSpace(req.PracticeSlug)

	if req.Email == "" || req.Password == "" || req.PracticeSlug == "" {
		return nil, ErrInvalidCredentials
	}

	practice, err := s.db.Practice.Query().
		Where(entpractice.Slug(req.PracticeSlug), entpractice.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find practice: %w", err)
	}

	staff, err := s.db.StaffMember.Query().
		Where(entstaff.PracticeID(practice.ID), entstaff.Email(req.Email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find staff member: %w", err)
	}

	if !staff.IsActive || !practice.IsActive {
		return nil, ErrAccountInactive
	}

	fails, _ := s.rdb.Get(ctx, redisKeyLoginFails(staff.ID)).Int()
	if fails >= maxLoginAttempts {
		return nil, ErrAccountLocked
	}

	if err := password.Verify(staff.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, staff.ID)
		return nil, ErrInvalidCredentials
	}

	s.rdb.Del(ctx, redisKeyLoginFails(staff.ID))

	return s.createSession(ctx, staff)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue a new access token only; the refresh token lives until logout.
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	identity := pasetotoken.Identity{
		StaffID:    claims.StaffID,
		PracticeID: claims.PracticeID,
		Role:       claims.Role,
	}
	accessToken, err := s.paseto.IssueAccess(identity, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Already expired; not an error from the client's perspective.
		slog.Debug("logout: session not found in Redis", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

func (s *authService) ChangePassword(ctx context.Context, staffID uuid.UUID, req ChangePasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return ErrPasswordTooShort
	}

	staff, err := s.db.StaffMember.Get(ctx, staffID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get staff member: %w", err)
	}

	if err := password.Verify(staff.PasswordHash, req.CurrentPassword); err != nil {
		return ErrWrongPassword
	}

	newHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.StaffMember.UpdateOne(staff).SetPasswordHash(newHash).Exec(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, staff *repo.StaffMember) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, staff.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	identity := pasetotoken.Identity{
		StaffID:    staff.ID,
		PracticeID: staff.PracticeID,
		Role:       string(staff.Role),
	}

	access, err := s.paseto.IssueAccess(identity, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(identity, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, staffID uuid.UUID) {
	key := redisKeyLoginFails(staffID)
	fails, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		slog.Warn("auth: record failed login", "staff_id", staffID, "err", err)
		return
	}
	if fails == 1 {
		s.rdb.Expire(ctx, key, lockWindowMins*time.Minute)
	}
}
