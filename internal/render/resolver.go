package render

import "image/color"

// Role is the resolved view of a guild role. HasColor reports whether the
// role carries an explicit color; roles on the platform default color
// render with the standard mention accent instead.
type Role struct {
	Name     string
	Color    color.RGBA
	HasColor bool
}

// User is the resolved view of a guild member.
type User struct {
	DisplayName string
}

// MentionResolver resolves mention IDs against the guild a message came
// from. Implementations report a miss through the boolean return rather
// than an error; rendering always proceeds on a failed lookup.
type MentionResolver interface {
	ResolveRole(id string) (Role, bool)
	ResolveUser(id string) (User, bool)
}
