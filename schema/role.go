package schema

//go:generate go tool stringer -type=Role -trimprefix=Role -output=role_string.go

// Role classifies an attribute name within a schema.
type Role int

const (
	// RolePlain is an attribute with no directional meaning.
	RolePlain Role = iota
	// RoleStart is the start-of-line half of an end pair.
	RoleStart
	// RoleEnd is the end-of-line half of an end pair.
	RoleEnd
	// RoleSide is either half of a left/right side pair.
	RoleSide
	// RoleDirectional is an attribute with a value substitution table.
	RoleDirectional
)

// Quad is an ordered group of four attributes describing both sides at both
// ends of a line.
type Quad struct {
	StartLeft  string
	StartRight string
	EndLeft    string
	EndRight   string
}

// Names returns the quad members in declaration order.
func (q Quad) Names() [4]string {
	return [4]string{q.StartLeft, q.StartRight, q.EndLeft, q.EndRight}
}
