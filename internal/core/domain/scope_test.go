package domain

import "testing"

func TestDecideScope(t *testing.T) {
	cases := []struct {
		role string
		want Scope
	}{
		{RoleCitizen, ScopeOwnedOnly},
		{RoleFieldWorker, ScopeOwnedOnly},
		{RoleDistrictOfficer, ScopeAll},
		{RoleStateOfficer, ScopeAll},
		{RoleNationalAdmin, ScopeAll},
		// Unknown or absent roles must fall back to least privilege.
		{"superuser", ScopeOwnedOnly},
		{"ADMIN", ScopeOwnedOnly},
		{"", ScopeOwnedOnly},
	}

	for _, tc := range cases {
		if got := DecideScope(tc.role); got != tc.want {
			t.Errorf("DecideScope(%q): expected %v, got %v", tc.role, tc.want, got)
		}
	}
}

func TestComplaintStatus_IsValid(t *testing.T) {
	for _, s := range []ComplaintStatus{StatusPending, StatusInProgress, StatusResolved} {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []ComplaintStatus{"", "open", "closed", "Pending"} {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
