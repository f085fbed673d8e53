package identity

// RoleName is a role as stored in the user_roles table.
type RoleName string

const (
	RoleSuperAdmin        RoleName = "super_admin"
	RoleCEO               RoleName = "ceo"
	RoleCTO               RoleName = "cto"
	RoleCFO               RoleName = "cfo"
	RoleAdmin             RoleName = "admin"
	RoleHR                RoleName = "hr"
	RoleFinanceManager    RoleName = "finance_manager"
	RoleOperationsManager RoleName = "operations_manager"
	RoleProjectManager    RoleName = "project_manager"
	RoleSalesManager      RoleName = "sales_manager"
	RoleMarketingManager  RoleName = "marketing_manager"
	RoleDeveloper         RoleName = "developer"
	RoleDesigner          RoleName = "designer"
	RoleAccountant        RoleName = "accountant"
	RoleSupport           RoleName = "support"
	RoleEmployee          RoleName = "employee"
	RoleContractor        RoleName = "contractor"
	RoleIntern            RoleName = "intern"
)

// BaselineRole is the effective role assigned to an authenticated user whose
// grant set comes back empty. Callers must never observe an authenticated
// user without a role.
const BaselineRole = RoleEmployee

// unrankedPriority sorts below every canonical rank so an unknown role name
// is never selected over a known one.
const unrankedPriority = 99

// rolePriority is the canonical total order. Lower value = higher authority.
var rolePriority = map[RoleName]int{
	RoleSuperAdmin:        1,
	RoleCEO:               2,
	RoleCTO:               3,
	RoleCFO:               4,
	RoleAdmin:             5,
	RoleHR:                6,
	RoleFinanceManager:    7,
	RoleOperationsManager: 8,
	RoleProjectManager:    9,
	RoleSalesManager:      10,
	RoleMarketingManager:  11,
	RoleDeveloper:         12,
	RoleDesigner:          13,
	RoleAccountant:        14,
	RoleSupport:           15,
	RoleEmployee:          16,
	RoleContractor:        17,
	RoleIntern:            18,
}

// Priority returns the rank of the role in the canonical hierarchy. Unknown
// role names share the low-authority sentinel rank.
func (r RoleName) Priority() int {
	if p, ok := rolePriority[r]; ok {
		return p
	}
	return unrankedPriority
}

// IsCanonical checks if the role is one of the predefined valid roles.
func (r RoleName) IsCanonical() bool {
	_, ok := rolePriority[r]
	return ok
}

// AtLeast checks if the role meets the minimum required authority level.
// Unranked roles never satisfy any minimum.
func (r RoleName) AtLeast(min RoleName) bool {
	if !r.IsCanonical() || !min.IsCanonical() {
		return false
	}
	return r.Priority() <= min.Priority()
}

// CanonicalRoles returns all predefined roles in hierarchical order, highest
// authority first.
func CanonicalRoles() []RoleName {
	return []RoleName{
		RoleSuperAdmin,
		RoleCEO,
		RoleCTO,
		RoleCFO,
		RoleAdmin,
		RoleHR,
		RoleFinanceManager,
		RoleOperationsManager,
		RoleProjectManager,
		RoleSalesManager,
		RoleMarketingManager,
		RoleDeveloper,
		RoleDesigner,
		RoleAccountant,
		RoleSupport,
		RoleEmployee,
		RoleContractor,
		RoleIntern,
	}
}

// ResolveEffectiveRole reduces a set of grants to the single role used for
// authorization decisions. Duplicates are tolerated. When two unranked names
// tie, the first one encountered wins; the reduction is deterministic over
// the input order. An empty set resolves to the baseline role.
func ResolveEffectiveRole(grants []RoleName) RoleName {
	if len(grants) == 0 {
		return BaselineRole
	}

	best := grants[0]
	for _, grant := range grants[1:] {
		if grant.Priority() < best.Priority() {
			best = grant
		}
	}

	return best
}

// ParseRole safely parses a string into a RoleName, reporting whether it is
// part of the canonical hierarchy.
func ParseRole(roleStr string) (RoleName, bool) {
	role := RoleName(roleStr)
	return role, role.IsCanonical()
}
