package render

import (
	"image"
	"image/color"
	"testing"
)

type stubRoles struct {
	roles map[string]Role
}

func (s stubRoles) ResolveRole(id string) (Role, bool) {
	role, ok := s.roles[id]
	return role, ok
}

func (s stubRoles) ResolveUser(string) (User, bool) { return User{}, false }

// bodyBandHas reports whether any pixel in the first body line carries
// exactly the wanted color. Glyph cores are fully opaque, so the drawn
// color always survives antialiasing somewhere in the band.
func bodyBandHas(img *image.RGBA, want color.RGBA) bool {
	for y := bodyY; y < bodyY+bodySize+lineLeading; y++ {
		for x := textX; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y) == want {
				return true
			}
		}
	}
	return false
}

func TestDrawSegmentColors(t *testing.T) {
	t.Parallel()

	engine := testEngine(t, stubEmoji{}, nil)
	green := color.RGBA{R: 46, G: 204, B: 113, A: 255}

	tests := []struct {
		name     string
		body     string
		resolver MentionResolver
		want     color.RGBA
	}{
		{
			name:     "role keeps its explicit color",
			body:     "{{ROLE:1:mods}}",
			resolver: stubRoles{roles: map[string]Role{"1": {Name: "mods", Color: green, HasColor: true}}},
			want:     green,
		},
		{
			name:     "colorless role falls back to the mention accent",
			body:     "{{ROLE:1:mods}}",
			resolver: stubRoles{roles: map[string]Role{"1": {Name: "mods"}}},
			want:     mentionColor,
		},
		{
			name:     "unknown role falls back to the mention accent",
			body:     "{{ROLE:9:ghosts}}",
			resolver: stubRoles{},
			want:     mentionColor,
		},
		{
			name: "missing resolver falls back to the mention accent",
			body: "{{ROLE:1:mods}}",
			want: mentionColor,
		},
		{
			name: "user mentions always use the mention accent",
			body: "{{USER:2:Ann}}",
			want: mentionColor,
		},
		{
			name: "everyone uses the broadcast accent",
			body: "{{EVERYONE}}",
			want: broadcastColor,
		},
		{
			name: "here uses the broadcast accent",
			body: "{{HERE}}",
			want: broadcastColor,
		},
		{
			name: "plain text uses the palette foreground",
			body: "hello",
			want: paletteDark.Text,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			img := engine.Render(Request{
				AuthorName: "ana",
				Body:       tt.body,
				Mode:       ModeDark,
				Resolver:   tt.resolver,
			})
			if !bodyBandHas(img, tt.want) {
				t.Errorf("no pixel in the body line drew %v for %q", tt.want, tt.body)
			}
		})
	}
}

func TestDrawSegmentRoleColorSuppressesFallback(t *testing.T) {
	t.Parallel()

	engine := testEngine(t, stubEmoji{}, nil)
	green := color.RGBA{R: 46, G: 204, B: 113, A: 255}
	resolver := stubRoles{roles: map[string]Role{"1": {Name: "mods", Color: green, HasColor: true}}}

	img := engine.Render(Request{
		AuthorName: "ana",
		Body:       "{{ROLE:1:mods}}",
		Mode:       ModeDark,
		Resolver:   resolver,
	})
	if bodyBandHas(img, mentionColor) {
		t.Error("mention accent drawn although the role carries its own color")
	}
}
