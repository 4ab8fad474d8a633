// Package authz holds the capability predicates of the role model. Every
// surface (handlers, use cases, list filters) derives authorization from these
// functions instead of re-checking roles inline, so the rules cannot drift
// between surfaces.
package authz

import (
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
)

// IsSuperUser reports whether u holds the Super User role.
func IsSuperUser(u *entity.User) bool {
	return u != nil && u.Role == entity.RoleSuperUser
}

// IsManagerTier reports whether u is a Manager or Super User.
func IsManagerTier(u *entity.User) bool {
	return u != nil && (u.Role == entity.RoleManager || u.Role == entity.RoleSuperUser)
}

// IsFinanceApprover reports whether u may act on finance approvals: the
// Finance role, membership in the Finance department, or manager tier.
func IsFinanceApprover(u *entity.User) bool {
	if u == nil {
		return false
	}
	return u.Role == entity.RoleFinance || u.Department == entity.DepartmentFinance || IsManagerTier(u)
}

// IsDirectReportOf reports whether a's reporting line points at b. The
// relation is not transitive: a report of a report is not a direct report.
func IsDirectReportOf(a, b *entity.User) bool {
	return a != nil && b != nil && a.LineManagerID != "" && a.LineManagerID == b.ID
}

// CanDecideRegistration reports whether caller may approve or reject the
// pending requester: Super Users always, anyone else only for their own direct
// reports. This gates visibility too, not just the decision itself.
func CanDecideRegistration(caller, requester *entity.User) bool {
	if IsSuperUser(caller) {
		return true
	}
	return IsManagerTier(caller) && IsDirectReportOf(requester, caller)
}

// CanManageProject reports whether u may edit the project or its pillar set.
func CanManageProject(u *entity.User, p *entity.Project) bool {
	if u == nil || p == nil {
		return false
	}
	return IsSuperUser(u) || u.ID == p.LeadID
}

// CanEditTask reports whether u may edit the task (status changes included):
// Super User, the lead of the task's project, any assignee, or the creator.
func CanEditTask(u *entity.User, t *entity.Task, project *entity.Project) bool {
	if u == nil || t == nil {
		return false
	}
	if IsSuperUser(u) || u.ID == t.CreatedBy || t.HasAssignee(u.ID) {
		return true
	}
	return project != nil && u.ID == project.LeadID
}

// CanDeleteTask reports whether u may delete the task. An assignee alone may
// edit but not delete.
func CanDeleteTask(u *entity.User, t *entity.Task, project *entity.Project) bool {
	if u == nil || t == nil {
		return false
	}
	if IsSuperUser(u) || u.ID == t.CreatedBy {
		return true
	}
	return project != nil && u.ID == project.LeadID
}
