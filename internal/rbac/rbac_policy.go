package rbac

const (
	RoleAdmin      = "admin"
	RoleHR         = "hr"
	RoleAccountant = "accountant"
	RoleViewer     = "viewer"
)

var Roles = []string{RoleAdmin, RoleHR, RoleAccountant, RoleViewer}

var Resources = []string{
	"employee", "course", "evaluation", "promotion", "reward", "leave", "absence",
	"serviceyear", "payroll", "exchange_rate", "settings", "diagnostics", "user", "role",
}

var Actions = []string{"read", "create", "update", "delete", "approve", "pay"}

// hrRecords are the personnel records the hr role maintains.
var hrRecords = []string{
	"employee", "course", "evaluation", "promotion", "reward", "leave", "absence", "serviceyear",
}

// roleParents lists the roles each role inherits from.
var roleParents = map[string][]string{
	RoleHR:         {RoleViewer},
	RoleAccountant: {RoleViewer},
}

func defaultPolicies() []PolicyRow {
	rows := []PolicyRow{{Role: RoleAdmin, Resource: "*", Action: "*"}}

	for _, res := range append(append([]string{}, hrRecords...), "payroll", "exchange_rate") {
		rows = append(rows, PolicyRow{Role: RoleViewer, Resource: res, Action: "read"})
	}

	for _, res := range hrRecords {
		for _, act := range []string{"create", "update", "delete"} {
			rows = append(rows, PolicyRow{Role: RoleHR, Resource: res, Action: act})
		}
	}
	rows = append(rows,
		PolicyRow{Role: RoleHR, Resource: "leave", Action: "approve"},
		PolicyRow{Role: RoleHR, Resource: "promotion", Action: "approve"},
	)

	for _, act := range []string{"create", "delete", "approve", "pay"} {
		rows = append(rows, PolicyRow{Role: RoleAccountant, Resource: "payroll", Action: act})
	}
	rows = append(rows,
		PolicyRow{Role: RoleAccountant, Resource: "exchange_rate", Action: "create"},
		PolicyRow{Role: RoleAccountant, Resource: "exchange_rate", Action: "update"},
		PolicyRow{Role: RoleAccountant, Resource: "reward", Action: "update"},
	)

	return rows
}
