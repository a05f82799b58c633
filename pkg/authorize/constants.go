package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // trigger materialization, resync, etc.

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceStaffMember Resource = "staff_member"
	ResourceAuthSession Resource = "auth_session"

	// Tenant management
	ResourcePractice Resource = "practice"

	// Client records
	ResourceClientProfile Resource = "client_profile"

	// Scheduling
	ResourceAppointmentSeries Resource = "appointment_series"
	ResourceAppointment       Resource = "appointment"
	ResourceCalendar          Resource = "calendar"

	// External calendar sync
	ResourceCalendarConnection Resource = "calendar_connection"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceStaffMember: {}, ResourceAuthSession: {},
	ResourcePractice:          {},
	ResourceClientProfile:     {},
	ResourceAppointmentSeries: {}, ResourceAppointment: {}, ResourceCalendar: {},
	ResourceCalendarConnection: {},
	ResourceSystem:             {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to staff members via grouping
// policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperAdmin Role = "role:platform:superadmin"

	// Practice roles (domain = practice:<uuid>)
	RolePracticeOwner     Role = "role:practice:owner"
	RolePracticeAdmin     Role = "role:practice:admin"
	RolePracticeClinician Role = "role:practice:clinician"

	// Private staff scope (domain = staff:<uuid>)
	RoleStaffSelf Role = "role:staff:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperAdmin: {},
	RolePracticeOwner:      {},
	RolePracticeAdmin:      {},
	RolePracticeClinician:  {},
	RoleStaffSelf:          {},
}

// Staff role strings (stored in DB staff_members.role column)
const (
	StaffRoleOwner     = "owner"
	StaffRoleAdmin     = "admin"
	StaffRoleClinician = "clinician"
)

// StaffRoleToRBACRole maps DB role values to Casbin roles
var StaffRoleToRBACRole = map[string]Role{
	StaffRoleOwner:     RolePracticeOwner,
	StaffRoleAdmin:     RolePracticeAdmin,
	StaffRoleClinician: RolePracticeClinician,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixPractice Domain = "practice:"
	DomainPrefixStaff    Domain = "staff:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func PracticeDomain(practiceID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixPractice, practiceID))
}

func StaffDomain(staffID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixStaff, staffID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixPractice) && s[:len(DomainPrefixPractice)] == string(DomainPrefixPractice):
		return reUUID.MatchString(s[len(DomainPrefixPractice):])
	case len(s) > len(DomainPrefixStaff) && s[:len(DomainPrefixStaff)] == string(DomainPrefixStaff):
		return reUUID.MatchString(s[len(DomainPrefixStaff):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// GroupSubject is the g.sub in Casbin: a concrete principal id (staff_id).
type GroupSubject string

// Grouping rows: g, staff_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
