package domain

import (
	"encoding/json"
	"strings"
)

// Role is the access level of an employee. It is persisted as its string form.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleManager   Role = "Manager"
	RoleAttendant Role = "Attendant"
)

var roles = []Role{RoleAdmin, RoleManager, RoleAttendant}

// ParseRole resolves s to a known role, ignoring case.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range roles {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// UnmarshalJSON accepts any casing of a known role and stores its canonical
// form. Unknown values are kept verbatim so that request validation can
// reject them.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if known, ok := ParseRole(s); ok {
		*r = known
		return nil
	}
	*r = Role(s)
	return nil
}
