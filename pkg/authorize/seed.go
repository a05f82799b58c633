package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Platform superadmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Practice-level policies (domain: practice:*)
	practicePolicies := []PermissionPolicy{
		// Owner: full control within the practice
		{RolePracticeOwner, WildcardDomain, ResourcePractice, ActionManage, EffectAllow},
		{RolePracticeOwner, WildcardDomain, ResourceStaffMember, ActionManage, EffectAllow},
		{RolePracticeOwner, WildcardDomain, ResourceClientProfile, ActionManage, EffectAllow},
		{RolePracticeOwner, WildcardDomain, ResourceAppointmentSeries, ActionManage, EffectAllow},
		{RolePracticeOwner, WildcardDomain, ResourceAppointment, ActionManage, EffectAllow},
		{RolePracticeOwner, WildcardDomain, ResourceCalendar, ActionRead, EffectAllow},
		{RolePracticeOwner, WildcardDomain, ResourceCalendarConnection, ActionManage, EffectAllow},
		{RolePracticeOwner, WildcardDomain, ResourceAppointmentSeries, ActionExecute, EffectAllow},
		{RolePracticeOwner, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},
		{RolePracticeOwner, WildcardDomain, ResourceRBAC, ActionRevoke, EffectAllow},

		// Admin: runs the front desk but does not manage the practice itself
		{RolePracticeAdmin, WildcardDomain, ResourcePractice, ActionRead, EffectAllow},
		{RolePracticeAdmin, WildcardDomain, ResourceStaffMember, ActionRead, EffectAllow},
		{RolePracticeAdmin, WildcardDomain, ResourceStaffMember, ActionList, EffectAllow},
		{RolePracticeAdmin, WildcardDomain, ResourceClientProfile, ActionManage, EffectAllow},
		{RolePracticeAdmin, WildcardDomain, ResourceAppointmentSeries, ActionManage, EffectAllow},
		{RolePracticeAdmin, WildcardDomain, ResourceAppointment, ActionManage, EffectAllow},
		{RolePracticeAdmin, WildcardDomain, ResourceCalendar, ActionRead, EffectAllow},

		// Clinician: works their own schedule
		{RolePracticeClinician, WildcardDomain, ResourceClientProfile, ActionRead, EffectAllow},
		{RolePracticeClinician, WildcardDomain, ResourceClientProfile, ActionList, EffectAllow},
		{RolePracticeClinician, WildcardDomain, ResourceAppointmentSeries, ActionManage, EffectAllow},
		{RolePracticeClinician, WildcardDomain, ResourceAppointment, ActionManage, EffectAllow},
		{RolePracticeClinician, WildcardDomain, ResourceCalendar, ActionRead, EffectAllow},
	}

	// Staff-level policies (domain: staff:*)
	staffPolicies := []PermissionPolicy{
		// StaffSelf: full control over own resources
		{RoleStaffSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleStaffSelf, WildcardDomain, ResourceStaffMember, ActionRead, EffectAllow},
		{RoleStaffSelf, WildcardDomain, ResourceStaffMember, ActionUpdate, EffectAllow},
		{RoleStaffSelf, WildcardDomain, ResourceCalendarConnection, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, practicePolicies...), staffPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignStaffSelfRole assigns the staff:self role in the staff member's
// private domain. Call this when creating a new staff member.
func AssignStaffSelfRole(ctx context.Context, auth IAuthorization, staffID string) error {
	domain := StaffDomain(staffID)
	subject := GroupSubject(staffID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleStaffSelf, domain)
	return err
}

// AssignPracticeRole assigns a practice role to a staff member.
// Valid roles: RolePracticeOwner, RolePracticeAdmin, RolePracticeClinician
func AssignPracticeRole(ctx context.Context, auth IAuthorization, staffID, practiceID string, role Role) error {
	switch role {
	case RolePracticeOwner, RolePracticeAdmin, RolePracticeClinician:
		// valid practice roles
	default:
		return ErrInvalidArgs
	}

	domain := PracticeDomain(practiceID)
	subject := GroupSubject(staffID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemovePracticeRole removes a practice role from a staff member.
func RemovePracticeRole(ctx context.Context, auth IAuthorization, staffID, practiceID string, role Role) error {
	domain := PracticeDomain(practiceID)
	subject := GroupSubject(staffID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetPracticeRoles returns all roles a staff member has in a practice.
func GetPracticeRoles(ctx context.Context, auth IAuthorization, staffID, practiceID string) ([]Role, error) {
	domain := PracticeDomain(practiceID)
	subject := GroupSubject(staffID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignPlatformSuperAdmin grants the platform superadmin role.
// Assign with caution: it bypasses every other check.
func AssignPlatformSuperAdmin(ctx context.Context, auth IAuthorization, staffID string) error {
	subject := GroupSubject(staffID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePlatformSuperAdmin, DomainSys)
	return err
}
