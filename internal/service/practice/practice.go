package practice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/juniperhealth/juniper_backend/internal/recurrence"
	"github.com/juniperhealth/juniper_backend/internal/repo"
	entpractice "github.com/juniperhealth/juniper_backend/internal/repo/practice"
	entstaff "github.com/juniperhealth/juniper_backend/internal/repo/staffmember"
	"github.com/juniperhealth/juniper_backend/pkg/authorize"
	"github.com/juniperhealth/juniper_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePracticeRequest struct {
	Name     string
	Slug     string
	Timezone string
	Phone    *string
	Address  *string

	// The founding owner account.
	OwnerFirstName string
	OwnerLastName  string
	OwnerEmail     string
	OwnerPassword  string
}

type AddStaffRequest struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	Role          string // owner | admin | clinician
	LicenseNumber *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreatePracticeRequest) (*repo.Practice, error)
	GetByID(ctx context.Context, practiceID uuid.UUID) (*repo.Practice, error)
	AddStaff(ctx context.Context, practiceID uuid.UUID, req AddStaffRequest) (*repo.StaffMember, error)
	ListStaff(ctx context.Context, practiceID uuid.UUID) ([]*repo.StaffMember, error)
	DeactivateStaff(ctx context.Context, practiceID, staffID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type practiceService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &practiceService{db: db, auth: auth}
}

func (s *practiceService) Create(ctx context.Context, req CreatePracticeRequest) (*repo.Practice, error) {
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	req.OwnerEmail = strings.ToLower(strings.TrimSpace(req.OwnerEmail))

	if req.Timezone != "" {
		if _, err := recurrence.LoadZone(req.Timezone); err != nil {
			return nil, ErrInvalidTimezone
		}
	}
	if len(req.OwnerPassword) < 8 {
		return nil, ErrPasswordTooShort
	}

	taken, err := s.db.Practice.Query().
		Where(entpractice.Slug(req.Slug)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	passHash, err := password.Hash(req.OwnerPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Practice and founding owner land together or not at all.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	c := tx.Practice.Create().
		SetName(req.Name).
		SetSlug(req.Slug)
	if req.Timezone != "" {
		c = c.SetTimezone(req.Timezone)
	}
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.Address != nil {
		c = c.SetNillableAddress(req.Address)
	}

	p, err := c.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create practice: %w", err)
	}

	owner, err := tx.StaffMember.Create().
		SetPracticeID(p.ID).
		SetFirstName(req.OwnerFirstName).
		SetLastName(req.OwnerLastName).
		SetEmail(req.OwnerEmail).
		SetPasswordHash(passHash).
		SetRole(entstaff.RoleOwner).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create owner: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	// Assign RBAC roles. Log but don't fail the request, policy can be repaired.
	if err := authorize.AssignPracticeRole(ctx, s.auth, owner.ID.String(), p.ID.String(), authorize.RolePracticeOwner); err != nil {
		slog.Warn("assign practice owner role", "staff_id", owner.ID, "err", err)
	}
	if err := authorize.AssignStaffSelfRole(ctx, s.auth, owner.ID.String()); err != nil {
		slog.Warn("assign staff self role", "staff_id", owner.ID, "err", err)
	}

	return p, nil
}

func (s *practiceService) GetByID(ctx context.Context, practiceID uuid.UUID) (*repo.Practice, error) {
	p, err := s.db.Practice.Query().
		Where(entpractice.ID(practiceID), entpractice.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get practice: %w", err)
	}
	return p, nil
}

func (s *practiceService) AddStaff(ctx context.Context, practiceID uuid.UUID, req AddStaffRequest) (*repo.StaffMember, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if _, err := s.GetByID(ctx, practiceID); err != nil {
		return nil, err
	}

	exists, err := s.db.StaffMember.Query().
		Where(entstaff.PracticeID(practiceID), entstaff.Email(req.Email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := s.db.StaffMember.Create().
		SetPracticeID(practiceID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetEmail(req.Email).
		SetPasswordHash(passHash)

	if req.Role != "" {
		c = c.SetRole(entstaff.Role(req.Role))
	}
	if req.LicenseNumber != nil {
		c = c.SetNillableLicenseNumber(req.LicenseNumber)
	}

	staff, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create staff member: %w", err)
	}

	// Assign RBAC roles matching the stored role.
	if rbacRole, ok := authorize.StaffRoleToRBACRole[string(staff.Role)]; ok {
		if err := authorize.AssignPracticeRole(ctx, s.auth, staff.ID.String(), practiceID.String(), rbacRole); err != nil {
			slog.Warn("assign practice role", "staff_id", staff.ID, "err", err)
		}
	}
	if err := authorize.AssignStaffSelfRole(ctx, s.auth, staff.ID.String()); err != nil {
		slog.Warn("assign staff self role", "staff_id", staff.ID, "err", err)
	}

	return staff, nil
}

func (s *practiceService) ListStaff(ctx context.Context, practiceID uuid.UUID) ([]*repo.StaffMember, error) {
	staff, err := s.db.StaffMember.Query().
		Where(entstaff.PracticeID(practiceID)).
		Order(entstaff.ByLastName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return staff, nil
}

func (s *practiceService) DeactivateStaff(ctx context.Context, practiceID, staffID uuid.UUID) error {
	staff, err := s.db.StaffMember.Query().
		Where(entstaff.ID(staffID), entstaff.PracticeID(practiceID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("get staff member: %w", err)
	}
	if err := s.db.StaffMember.UpdateOne(staff).SetIsActive(false).Exec(ctx); err != nil {
		return fmt.Errorf("deactivate staff member: %w", err)
	}

	// Revoke the practice role so stale sessions lose access immediately.
	if rbacRole, ok := authorize.StaffRoleToRBACRole[string(staff.Role)]; ok {
		if err := authorize.RemovePracticeRole(ctx, s.auth, staff.ID.String(), practiceID.String(), rbacRole); err != nil {
			slog.Warn("remove practice role", "staff_id", staff.ID, "err", err)
		}
	}

	return nil
}
