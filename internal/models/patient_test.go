package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	born := date(2000, time.June, 15)

	cases := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"DayBeforeBirthday", date(2024, time.June, 14), 23},
		{"OnBirthday", date(2024, time.June, 15), 24},
		{"DayAfterBirthday", date(2024, time.June, 16), 24},
		{"EarlierMonth", date(2024, time.March, 1), 23},
		{"LaterMonth", date(2024, time.December, 31), 24},
		{"SameYear", date(2000, time.December, 1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AgeAt(born, tc.today); got != tc.want {
				t.Errorf("AgeAt(%v, %v) = %d, want %d", born, tc.today, got, tc.want)
			}
		})
	}
}

func TestGenderAndInsurance(t *testing.T) {
	if !ValidGender(GenderFemale) || ValidGender("Q") {
		t.Error("gender validation mismatch")
	}
	if got := GenderLabel(GenderOther); got != "Other" {
		t.Errorf("GenderLabel(O) = %q", got)
	}
	if !ValidInsuranceType(InsuranceMedicare) || ValidInsuranceType("gold") {
		t.Error("insurance validation mismatch")
	}
	if got := InsuranceTypeLabel(InsuranceUninsured); got != "Uninsured" {
		t.Errorf("InsuranceTypeLabel(uninsured) = %q", got)
	}
}

func TestPatientName(t *testing.T) {
	p := Patient{User: User{FirstName: "Ana", LastName: "Silva"}}
	if got := p.Name(); got != "Ana Silva" {
		t.Errorf("Name() = %q", got)
	}
}
