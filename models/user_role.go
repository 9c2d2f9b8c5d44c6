package models

type UserRole string

const (
	TenantAdminRole    UserRole = "TENANT_ADMIN_ROLE"
	TenantUserRole     UserRole = "TENANT_USER_ROLE"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
)

var roleHumanName = map[UserRole]string{
	TenantAdminRole:    "Company administrator",
	TenantUserRole:     "User",
	UserRoleSuperAdmin: "Platform superadmin",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsTenantAdmin() bool {
	return r == TenantAdminRole
}

type AccountType string

const (
	AccountTypeStaff  AccountType = "Staff"
	AccountTypeClient AccountType = "Client"
)

func (a AccountType) IsValid() bool {
	return a == AccountTypeStaff || a == AccountTypeClient
}

type LocationType string

const (
	LocationTypeOnSite LocationType = "On-site"
	LocationTypeRemote LocationType = "Remote"
	LocationTypeHybrid LocationType = "Hybrid"
)
