package client

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/juniperhealth/juniper_backend/internal/repo"
	entclient "github.com/juniperhealth/juniper_backend/internal/repo/clientprofile"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page    int
	PerPage int
	Search  *string // matches last name prefix
	Active  *bool
}

type CreateRequest struct {
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, practiceID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.ClientProfile], error)
	GetByID(ctx context.Context, practiceID, clientID uuid.UUID) (*repo.ClientProfile, error)
	Create(ctx context.Context, practiceID uuid.UUID, req CreateRequest) (*repo.ClientProfile, error)
	Update(ctx context.Context, practiceID, clientID uuid.UUID, req UpdateRequest) (*repo.ClientProfile, error)
	Deactivate(ctx context.Context, practiceID, clientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &clientService{db: db}
}

func (s *clientService) List(ctx context.Context, practiceID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.ClientProfile], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.ClientProfile.Query().
		Where(entclient.PracticeID(practiceID), entclient.DeletedAtIsNil())

	if req.Search != nil && *req.Search != "" {
		q = q.Where(entclient.LastNameHasPrefix(*req.Search))
	}
	if req.Active != nil {
		q = q.Where(entclient.IsActive(*req.Active))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}

	rows, err := q.
		Order(entclient.ByLastName(sql.OrderAsc()), entclient.ByFirstName(sql.OrderAsc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.ClientProfile]{
		Data:       rows,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *clientService) GetByID(ctx context.Context, practiceID, clientID uuid.UUID) (*repo.ClientProfile, error) {
	row, err := s.db.ClientProfile.Query().
		Where(
			entclient.ID(clientID),
			entclient.PracticeID(practiceID),
			entclient.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return row, nil
}

func (s *clientService) Create(ctx context.Context, practiceID uuid.UUID, req CreateRequest) (*repo.ClientProfile, error) {
	c := s.db.ClientProfile.Create().
		SetPracticeID(practiceID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)

	if req.Email != nil {
		c = c.SetNillableEmail(req.Email)
	}
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}

	row, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return row, nil
}

func (s *clientService) Update(ctx context.Context, practiceID, clientID uuid.UUID, req UpdateRequest) (*repo.ClientProfile, error) {
	row, err := s.GetByID(ctx, practiceID, clientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.ClientProfile.UpdateOne(row)
	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Email != nil {
		upd = upd.SetNillableEmail(req.Email)
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(req.Phone)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return updated, nil
}

func (s *clientService) Deactivate(ctx context.Context, practiceID, clientID uuid.UUID) error {
	row, err := s.GetByID(ctx, practiceID, clientID)
	if err != nil {
		return err
	}
	if err := s.db.ClientProfile.UpdateOne(row).SetIsActive(false).Exec(ctx); err != nil {
		return fmt.Errorf("deactivate client: %w", err)
	}
	return nil
}
