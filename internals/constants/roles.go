package constants

const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
	RoleMember  = "member"
)

// AdminAndAbove may manage surveys, contacts and campaigns.
var AdminAndAbove = []string{RoleOwner, RoleAdmin}

// AnalystAndAbove may read analytics and export data.
var AnalystAndAbove = []string{RoleOwner, RoleAdmin, RoleAnalyst}

// AllRoles is every role an organization membership can carry.
var AllRoles = []string{RoleOwner, RoleAdmin, RoleAnalyst, RoleMember}

func IsValidRole(r string) bool {
	for _, v := range AllRoles {
		if v == r {
			return true
		}
	}
	return false
}
