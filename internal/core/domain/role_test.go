package domain

import (
	"encoding/json"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"Admin":         RoleAdmin,
		"admin":         RoleAdmin,
		" MANAGER ":     RoleManager,
		"attendant":     RoleAttendant,
		"":              "",
		"administrator": "",
	}

	for in, want := range cases {
		got, ok := ParseRole(in)
		if got != want || ok != (want != "") {
			t.Errorf("ParseRole(%q) = %q, %v, want %q", in, got, ok, want)
		}
	}
}

func TestRole_UnmarshalJSON(t *testing.T) {
	cases := map[string]Role{
		`"admin"`:     RoleAdmin,
		`"MANAGER"`:   RoleManager,
		`"Attendant"`: RoleAttendant,
		`"Janitor"`:   Role("Janitor"),
		`""`:          "",
	}

	for in, want := range cases {
		var got Role
		if err := json.Unmarshal([]byte(in), &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		if got != want {
			t.Errorf("Unmarshal(%s) = %q, want %q", in, got, want)
		}
	}

	var r Role
	if err := json.Unmarshal([]byte(`1`), &r); err == nil {
		t.Error("Unmarshal(1) should fail")
	}
}
