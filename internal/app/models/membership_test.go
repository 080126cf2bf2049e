package models

import "testing"

func TestMembershipStatusIsValid(t *testing.T) {
	valid := []MembershipStatus{
		MembershipStatusPending,
		MembershipStatusAccepted,
		MembershipStatusDeclined,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []MembershipStatus{"", "waitlisted", "ACCEPTED", "Accepted "}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestCountsTowardRoster(t *testing.T) {
	tests := []struct {
		status  MembershipStatus
		want    bool
		wantErr bool
	}{
		{MembershipStatusAccepted, true, false},
		{MembershipStatusPending, false, false},
		{MembershipStatusDeclined, false, false},
		{"waitlisted", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		got, err := tt.status.CountsTowardRoster()
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error for unknown status", tt.status)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.status, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.status, got, tt.want)
		}
	}
}
