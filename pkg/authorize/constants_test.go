package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid practice domain", Domain("practice:550e8400-e29b-41d4-a716-446655440000"), true},
		{"valid staff domain", Domain("staff:550e8400-e29b-41d4-a716-446655440000"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"practice without uuid", Domain("practice:"), false},
		{"practice with invalid uuid", Domain("practice:invalid-uuid"), false},
		{"staff without uuid", Domain("staff:"), false},
		{"staff with invalid uuid", Domain("staff:not-a-uuid"), false},
		{"unknown prefix", Domain("unknown:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestPracticeDomain(t *testing.T) {
	practiceID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("practice:550e8400-e29b-41d4-a716-446655440000")

	result := PracticeDomain(practiceID)
	if result != expected {
		t.Errorf("PracticeDomain(%q) = %q, want %q", practiceID, result, expected)
	}
}

func TestStaffDomain(t *testing.T) {
	staffID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("staff:550e8400-e29b-41d4-a716-446655440000")

	result := StaffDomain(staffID)
	if result != expected {
		t.Errorf("StaffDomain(%q) = %q, want %q", staffID, result, expected)
	}
}

func TestKnownActions(t *testing.T) {
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	expectedResources := []Resource{
		ResourceStaffMember, ResourceAuthSession,
		ResourcePractice, ResourceClientProfile,
		ResourceAppointmentSeries, ResourceAppointment, ResourceCalendar,
		ResourceCalendarConnection,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	expectedRoles := []Role{
		RolePlatformSuperAdmin,
		RolePracticeOwner, RolePracticeAdmin, RolePracticeClinician,
		RoleStaffSelf,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestStaffRoleToRBACRole(t *testing.T) {
	tests := []struct {
		dbRole string
		want   Role
	}{
		{StaffRoleOwner, RolePracticeOwner},
		{StaffRoleAdmin, RolePracticeAdmin},
		{StaffRoleClinician, RolePracticeClinician},
	}

	for _, tt := range tests {
		got, ok := StaffRoleToRBACRole[tt.dbRole]
		if !ok {
			t.Errorf("Expected DB role %q to map to an RBAC role", tt.dbRole)
			continue
		}
		if got != tt.want {
			t.Errorf("StaffRoleToRBACRole[%q] = %q, want %q", tt.dbRole, got, tt.want)
		}
	}
}
