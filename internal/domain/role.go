package domain

import "github.com/samber/lo"

// Role is an authorization tag for an acting or target principal. Role
// sets arrive pre-resolved from the account subsystem; the engine performs
// no identity resolution.
type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleAttendee  Role = "attendee"
	RoleSpeaker   Role = "speaker"
	RoleVIP       Role = "vip"
)

// HasRole reports whether the role set contains r. Order is irrelevant.
func HasRole(roles []Role, r Role) bool {
	return lo.Contains(roles, r)
}
