package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/carth/internal/core/domain"
)

func TestNewToolchain(t *testing.T) {
	tests := []struct {
		version   string
		wantMajor int
		wantErr   bool
	}{
		{"12.4", 12, false},
		{"11.7", 11, false},
		{"26.0.1", 26, false},
		{"13", 13, false},
		{" 12.5 \n", 12, false},
		{"", 0, true},
		{"beta", 0, true},
		{"Xcode 12.4", 0, true},
	}

	for _, tt := range tests {
		tc, err := domain.NewToolchain(tt.version)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewToolchain(%q): expected error, got %+v", tt.version, tc)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewToolchain(%q): unexpected error: %v", tt.version, err)
			continue
		}
		if tc.Major != tt.wantMajor {
			t.Errorf("NewToolchain(%q).Major = %d, want %d", tt.version, tc.Major, tt.wantMajor)
		}
	}
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"bootstrap", "update", "build"} {
		action, err := domain.ParseAction(s)
		if err != nil {
			t.Errorf("ParseAction(%q): unexpected error: %v", s, err)
		}
		if action.String() != s {
			t.Errorf("ParseAction(%q) = %q", s, action)
		}
	}

	_, err := domain.ParseAction("checkout")
	if !errors.Is(err, domain.ErrUnknownAction) {
		t.Errorf("ParseAction(checkout): expected ErrUnknownAction, got %v", err)
	}
}
