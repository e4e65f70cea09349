package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"test:view",
		"attempt:submit",
		"attempt:view-own",
	},
	"teacher": {
		"test:create",
		"test:view",
		"test:list-own",
		"attempt:view-all",
		"results:view",
	},
	"admin": {
		"*", // everything
	},
}
