package configs

import (
	"github.com/awebcode/backend-travel-trippz/types"
)

type Permission string

const (
	PermissionManageHotels   Permission = "manage-hotels"
	PermissionManageBookings Permission = "manage-bookings"
	PermissionUploadMedia    Permission = "upload-media"
	PermissionManageUsers    Permission = "manage-users"
)

var RolePermissions = map[types.Role][]Permission{
	types.RoleUser: {},
	types.RoleServiceProvider: {
		PermissionManageHotels,
		PermissionUploadMedia,
	},
	types.RoleAdmin: {
		PermissionManageHotels,
		PermissionManageBookings,
		PermissionUploadMedia,
		PermissionManageUsers,
	},
}
