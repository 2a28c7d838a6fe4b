package domain

import "strings"

// Role represents a League of Legends position as written by the roster scraper
type Role string

const (
	RoleTop     Role = "Top"
	RoleJungle  Role = "Jungle"
	RoleMid     Role = "Mid"
	RoleBot     Role = "Bot"
	RoleSupport Role = "Support"
)

// AllRoles contains all valid roles in lane order
var AllRoles = []Role{RoleTop, RoleJungle, RoleMid, RoleBot, RoleSupport}

// roleAliases maps the spellings seen in wiki data to the canonical role
var roleAliases = map[string]Role{
	"top":     RoleTop,
	"jungle":  RoleJungle,
	"jungler": RoleJungle,
	"mid":     RoleMid,
	"middle":  RoleMid,
	"bot":     RoleBot,
	"adc":     RoleBot,
	"bottom":  RoleBot,
	"support": RoleSupport,
	"sup":     RoleSupport,
}

// IsValid checks if a role is one of the five positions
func (r Role) IsValid() bool {
	switch r {
	case RoleTop, RoleJungle, RoleMid, RoleBot, RoleSupport:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole normalizes a raw role string. Unknown values are returned trimmed
// but otherwise untouched so they still compare by exact match.
func ParseRole(s string) Role {
	s = strings.TrimSpace(s)
	if r, ok := roleAliases[strings.ToLower(s)]; ok {
		return r
	}
	return Role(s)
}
