package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestTopColoredRole(t *testing.T) {
	t.Parallel()

	byID := map[string]*discordgo.Role{
		"plain-high": {ID: "plain-high", Position: 30, Color: 0},
		"red-mid":    {ID: "red-mid", Position: 20, Color: 0xff0000},
		"blue-low":   {ID: "blue-low", Position: 10, Color: 0x0000ff},
	}

	tests := []struct {
		name    string
		roleIDs []string
		want    string
	}{
		{
			name:    "highest colored role wins",
			roleIDs: []string{"blue-low", "red-mid"},
			want:    "red-mid",
		},
		{
			name:    "colorless role above a colored one is skipped",
			roleIDs: []string{"plain-high", "red-mid"},
			want:    "red-mid",
		},
		{
			name:    "all roles colorless",
			roleIDs: []string{"plain-high"},
			want:    "",
		},
		{
			name:    "unknown role ids are skipped",
			roleIDs: []string{"gone", "blue-low"},
			want:    "blue-low",
		},
		{
			name:    "no roles",
			roleIDs: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := topColoredRole(tt.roleIDs, byID)
			if tt.want == "" {
				if got != nil {
					t.Errorf("topColoredRole = %q, want nil", got.ID)
				}
				return
			}
			if got == nil {
				t.Fatalf("topColoredRole = nil, want %q", tt.want)
			}
			if got.ID != tt.want {
				t.Errorf("topColoredRole = %q, want %q", got.ID, tt.want)
			}
		})
	}
}

func TestRoleColor(t *testing.T) {
	t.Parallel()

	c := roleColor(0x2ecc71)
	if c.R != 0x2e || c.G != 0xcc || c.B != 0x71 || c.A != 0xff {
		t.Errorf("roleColor(0x2ecc71) = %+v, want 2e/cc/71/ff", c)
	}
}
