package models

import "testing"

func TestFullName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Jane", "Doe", "Jane Doe"},
		{"Jane", "", "Jane"},
		{"", "Doe", "Doe"},
		{"", "", ""},
	}
	for _, tc := range cases {
		u := User{FirstName: tc.first, LastName: tc.last}
		if got := u.FullName(); got != tc.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestRoles(t *testing.T) {
	for _, role := range []string{RolePatient, RoleDoctor, RoleAdmin} {
		if !ValidRole(role) {
			t.Errorf("expected %q to be a valid role", role)
		}
	}
	if ValidRole("nurse") {
		t.Error("expected unknown role to be rejected")
	}
	if got := RoleLabel(RoleDoctor); got != "Doctor" {
		t.Errorf("RoleLabel(doctor) = %q", got)
	}
}

func TestDoctorDisplayName(t *testing.T) {
	d := Doctor{User: User{FirstName: "Gregory", LastName: "House"}}
	if got := d.Name(); got != "Dr. Gregory House" {
		t.Errorf("Name() = %q", got)
	}
}
