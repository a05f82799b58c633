package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// ClaimsProvider is an interface that any claims type can implement
// to provide staff identification for authorization.
type ClaimsProvider interface {
	GetStaffID() uuid.UUID
	GetPracticeID() uuid.UUID
}

type ctxKeyClaimsProvider struct{}

// WithClaimsProvider stores a ClaimsProvider in the context.
func WithClaimsProvider(ctx context.Context, cp ClaimsProvider) context.Context {
	return context.WithValue(ctx, ctxKeyClaimsProvider{}, cp)
}

func claimsFromContext(ctx context.Context) (ClaimsProvider, bool) {
	v := ctx.Value(ctxKeyClaimsProvider{})
	if v == nil {
		return nil, false
	}
	cp, ok := v.(ClaimsProvider)
	return cp, ok
}

// SubjectFromContext extracts the GroupSubject (staff ID) from context.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	cp, ok := claimsFromContext(ctx)
	if !ok {
		return "", ErrNoSubjectInContext
	}

	staffID := cp.GetStaffID()
	if staffID == uuid.Nil {
		return "", ErrNoSubjectInContext
	}

	return GroupSubject(staffID.String()), nil
}

// StaffIDFromContext extracts the staff ID as uuid.UUID from context.
func StaffIDFromContext(ctx context.Context) (uuid.UUID, error) {
	cp, ok := claimsFromContext(ctx)
	if !ok {
		return uuid.Nil, ErrNoSubjectInContext
	}

	staffID := cp.GetStaffID()
	if staffID == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	return staffID, nil
}

// PracticeDomainFromContext returns the practice domain of the
// authenticated staff member. Most enforcement calls use this.
func PracticeDomainFromContext(ctx context.Context) (Domain, error) {
	cp, ok := claimsFromContext(ctx)
	if !ok {
		return "", ErrNoSubjectInContext
	}

	practiceID := cp.GetPracticeID()
	if practiceID == uuid.Nil {
		return "", ErrNoSubjectInContext
	}

	return PracticeDomain(practiceID.String()), nil
}

// StaffSelfDomain returns the staff member's private domain for
// self-owned resources such as sessions and calendar connections.
func StaffSelfDomain(staffID string) Domain {
	return StaffDomain(staffID)
}

// DomainFromResource determines the appropriate domain based on resource ownership.
// - If practiceID is provided, returns practice:<uuid> domain
// - If staffID is provided, returns staff:<uuid> domain
// - Otherwise returns sys domain
func DomainFromResource(practiceID, staffID *string) Domain {
	if practiceID != nil && *practiceID != "" {
		return PracticeDomain(*practiceID)
	}
	if staffID != nil && *staffID != "" {
		return StaffDomain(*staffID)
	}
	return DomainSys
}
