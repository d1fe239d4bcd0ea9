package roles

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Role
	}{
		{name: "bare selection", input: "tenant", expected: Tenant},
		{name: "mixed case", input: "Landlord", expected: Landlord},
		{name: "already prefixed", input: "ROLE_ADMIN", expected: Admin},
		{name: "prefixed lowercase", input: "role_tenant", expected: Tenant},
		{name: "whitespace", input: "  admin ", expected: Admin},
		{name: "unknown tag preserved", input: "ROLE_AUDITOR", expected: Role("ROLE_AUDITOR")},
		{name: "empty", input: "", expected: Role("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.expected {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSetElevated(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		elevated bool
	}{
		{name: "tenant only", tags: []string{"ROLE_TENANT"}, elevated: false},
		{name: "landlord only", tags: []string{"ROLE_LANDLORD"}, elevated: true},
		{name: "admin only", tags: []string{"ROLE_ADMIN"}, elevated: true},
		{name: "admin and tenant", tags: []string{"ROLE_ADMIN", "ROLE_TENANT"}, elevated: true},
		{name: "landlord and admin", tags: []string{"ROLE_LANDLORD", "ROLE_ADMIN"}, elevated: true},
		{name: "no roles", tags: nil, elevated: false},
		{name: "unknown role never elevates", tags: []string{"ROLE_AUDITOR"}, elevated: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ParseSet(tt.tags)
			if got := set.Elevated(); got != tt.elevated {
				t.Errorf("Elevated() = %v, want %v for %v", got, tt.elevated, tt.tags)
			}
		})
	}
}

func TestSetRoundTrip(t *testing.T) {
	tags := []string{"ROLE_LANDLORD", "ROLE_AUDITOR"}
	set := ParseSet(tags)

	got := set.Strings()
	if len(got) != len(tags) {
		t.Fatalf("round trip changed length: %v", got)
	}
	for i := range tags {
		if got[i] != tags[i] {
			t.Errorf("round trip changed tag %d: got %q, want %q", i, got[i], tags[i])
		}
	}

	if !set.Has(Landlord) {
		t.Error("expected set to contain ROLE_LANDLORD")
	}
	if set.Has(Admin) {
		t.Error("did not expect set to contain ROLE_ADMIN")
	}
}
