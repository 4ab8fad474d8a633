package entity

import "time"

// Roles. The set is flat: no role implies another except through the named
// predicates in the authz package.
const (
	RoleRegularUser = "Regular User"
	RoleProjectLead = "Project Lead"
	RoleManager     = "Manager"
	RoleFinance     = "Finance"
	RoleSuperUser   = "Super User"
)

// Account statuses. A freshly registered account is Pending until its line
// manager decides; Active is the only status that may authenticate.
const (
	UserStatusPending  = "Pending"
	UserStatusActive   = "Active"
	UserStatusRejected = "Rejected"
	UserStatusInactive = "Inactive"
)

// DepartmentFinance grants finance-approver capability regardless of role.
const DepartmentFinance = "Finance"

// User is a principal. A registration request is simply a User in status
// Pending; approval flips it to Active (optionally overriding the role).
type User struct {
	ID            string
	Email         string
	PasswordHash  string
	FullName      string
	Role          string
	Department    string
	Phone         string
	Status        string
	LineManagerID string // empty = no reporting line (bootstrap accounts)
	CreatedAt     time.Time
	LastLogin     *time.Time
}

// ValidRole reports whether r is one of the defined roles.
func ValidRole(r string) bool {
	switch r {
	case RoleRegularUser, RoleProjectLead, RoleManager, RoleFinance, RoleSuperUser:
		return true
	}
	return false
}
