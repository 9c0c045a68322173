package tldr

import "strings"

// Role is the semantic category of a page line.
type Role uint8

const (
	RoleInvalid Role = iota
	RoleTitle
	RoleDescription
	RoleBullet
	RoleExample
	RoleBlank
)

const (
	titlePrefix   = "# "
	descPrefix    = "> "
	bulletPrefix  = "- "
	examplePrefix = "`"
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleDescription:
		return "description"
	case RoleBullet:
		return "bullet"
	case RoleExample:
		return "example"
	case RoleBlank:
		return "blank"
	default:
		return "invalid"
	}
}

// Classify returns the role of line. A line keeps its role prefix; for Title,
// Description, Bullet and Example the prefix is guaranteed to be present.
func Classify(line string) Role {
	switch {
	case strings.HasPrefix(line, titlePrefix):
		return RoleTitle
	case strings.HasPrefix(line, descPrefix):
		return RoleDescription
	case strings.HasPrefix(line, bulletPrefix):
		return RoleBullet
	case strings.HasPrefix(line, examplePrefix):
		return RoleExample
	case strings.TrimSpace(line) == "":
		return RoleBlank
	default:
		return RoleInvalid
	}
}

// classified is a line whose role has been decided. body is the line with its
// role prefix removed.
type classified struct {
	role Role
	body string
}

func classify(line string) classified {
	role := Classify(line)
	c := classified{role: role, body: line}
	switch role {
	case RoleTitle:
		c.body = line[len(titlePrefix):]
	case RoleDescription:
		c.body = line[len(descPrefix):]
	case RoleBullet:
		c.body = line[len(bulletPrefix):]
	case RoleExample:
		c.body = line[len(examplePrefix):]
	}
	return c
}
