package controllers

import "testing"

func TestCanManageProvider(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		caller uint
		target uint
		want   bool
	}{
		{"admin manages any provider", "admin", 0, 5, true},
		{"provider manages own rows", "provider", 5, 5, true},
		{"provider cannot manage another provider", "provider", 5, 6, false},
		{"caller without a provider profile", "provider", 0, 5, false},
		{"zero caller never matches zero target", "provider", 0, 0, false},
		{"client never manages availability", "client", 0, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canManageProvider(tt.role, tt.caller, tt.target); got != tt.want {
				t.Errorf("canManageProvider(%s, %d, %d) = %v, want %v", tt.role, tt.caller, tt.target, got, tt.want)
			}
		})
	}
}
