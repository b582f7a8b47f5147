package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"preeval:view",
		"attempt:create",
		"attempt:complete",
		"route:view",
	},
	"admin": {
		"*", // everything
	},
}
