package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// mockClaimsProvider implements ClaimsProvider for testing
type mockClaimsProvider struct {
	staffID    uuid.UUID
	practiceID uuid.UUID
}

func (m *mockClaimsProvider) GetStaffID() uuid.UUID {
	return m.staffID
}

func (m *mockClaimsProvider) GetPracticeID() uuid.UUID {
	return m.practiceID
}

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid claims provider",
			setupCtx: func() context.Context {
				cp := &mockClaimsProvider{staffID: validUUID, practiceID: uuid.New()}
				return WithClaimsProvider(context.Background(), cp)
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no claims provider in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "nil uuid in claims provider",
			setupCtx: func() context.Context {
				cp := &mockClaimsProvider{staffID: uuid.Nil}
				return WithClaimsProvider(context.Background(), cp)
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubjectFromContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if subject != tt.wantSubject {
				t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
			}
		})
	}
}

func TestPracticeDomainFromContext(t *testing.T) {
	practiceID := uuid.New()

	ctx := WithClaimsProvider(context.Background(), &mockClaimsProvider{
		staffID:    uuid.New(),
		practiceID: practiceID,
	})

	dom, err := PracticeDomainFromContext(ctx)
	if err != nil {
		t.Fatalf("PracticeDomainFromContext() error = %v", err)
	}
	if want := PracticeDomain(practiceID.String()); dom != want {
		t.Errorf("PracticeDomainFromContext() = %q, want %q", dom, want)
	}

	if _, err := PracticeDomainFromContext(context.Background()); err == nil {
		t.Error("expected error for context without claims")
	}

	ctx = WithClaimsProvider(context.Background(), &mockClaimsProvider{staffID: uuid.New()})
	if _, err := PracticeDomainFromContext(ctx); err == nil {
		t.Error("expected error for nil practice ID")
	}
}

func TestDomainFromResource(t *testing.T) {
	practiceID := uuid.New().String()
	staffID := uuid.New().String()
	empty := ""

	tests := []struct {
		name       string
		practiceID *string
		staffID    *string
		want       Domain
	}{
		{"practice wins over staff", &practiceID, &staffID, PracticeDomain(practiceID)},
		{"staff when no practice", nil, &staffID, StaffDomain(staffID)},
		{"sys when neither", nil, nil, DomainSys},
		{"empty strings fall through to sys", &empty, &empty, DomainSys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainFromResource(tt.practiceID, tt.staffID); got != tt.want {
				t.Errorf("DomainFromResource() = %q, want %q", got, tt.want)
			}
		})
	}
}
