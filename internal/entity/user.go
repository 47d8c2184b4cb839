package entity

import "github.com/missionforge/backend/pkg/enum"

type GlobalRole string

var (
	RoleSuperAdmin = enum.New(GlobalRole("super_admin"))
	RoleAdmin      = enum.New(GlobalRole("admin"))
	RoleUser       = enum.New(GlobalRole("user"))
)

var GlobalAdminRoles = []GlobalRole{RoleSuperAdmin, RoleAdmin}

type User struct {
	Base

	Address string `gorm:"unique"`
	Name    string `gorm:"unique"`
	Role    GlobalRole

	Points   uint64
	Settings Map
}
