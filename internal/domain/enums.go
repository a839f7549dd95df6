package domain

// ActivityKind qualifies an exit-log row. Check-outs are recorded as
// corrective activity; a preventive row with quantity 0 marks a maintenance
// threshold event.
type ActivityKind string

const (
	ActivityCorrective ActivityKind = "corrective"
	ActivityPreventive ActivityKind = "preventive"
)

func (a ActivityKind) String() string { return string(a) }

func (a ActivityKind) IsValid() bool {
	switch a {
	case ActivityCorrective, ActivityPreventive:
		return true
	}
	return false
}

// MovementKind selects the dashboard workflow: sortie checks a tool out,
// entree checks it back in.
type MovementKind string

const (
	MovementSortie MovementKind = "sortie"
	MovementEntree MovementKind = "entree"
)

func (m MovementKind) String() string { return string(m) }

func (m MovementKind) IsValid() bool {
	switch m {
	case MovementSortie, MovementEntree:
		return true
	}
	return false
}

// ToolKind identifies which catalog a selection targets.
type ToolKind string

const (
	ToolKindPatte    ToolKind = "patte"
	ToolKindCoupelle ToolKind = "coupelle"
)

func (k ToolKind) String() string { return string(k) }

func (k ToolKind) IsValid() bool {
	switch k {
	case ToolKindPatte, ToolKindCoupelle:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}
