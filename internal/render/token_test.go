package render

import (
	"reflect"
	"testing"
)

func TestParsePlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  segment
	}{
		{
			name:  "role token",
			input: "{{ROLE:123:Moderators}}",
			want:  segment{kind: segRole, raw: "{{ROLE:123:Moderators}}", id: "123", name: "Moderators"},
		},
		{
			name:  "user token",
			input: "{{USER:456:sam}}",
			want:  segment{kind: segUser, raw: "{{USER:456:sam}}", id: "456", name: "sam"},
		},
		{
			name:  "role name containing colon",
			input: "{{ROLE:123:Ops: On Call}}",
			want:  segment{kind: segRole, raw: "{{ROLE:123:Ops: On Call}}", id: "123", name: "Ops: On Call"},
		},
		{
			name:  "everyone token",
			input: "{{EVERYONE}}",
			want:  segment{kind: segEveryone, raw: "{{EVERYONE}}"},
		},
		{
			name:  "here token",
			input: "{{HERE}}",
			want:  segment{kind: segHere, raw: "{{HERE}}"},
		},
		{
			name:  "role token missing name",
			input: "{{ROLE:123}}",
			want:  segment{kind: segText, raw: "{{ROLE:123}}"},
		},
		{
			name:  "unknown token",
			input: "{{WAT:1:2}}",
			want:  segment{kind: segText, raw: "{{WAT:1:2}}"},
		},
		{
			name:  "empty braces",
			input: "{{}}",
			want:  segment{kind: segText, raw: "{{}}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := parsePlaceholder(tt.input); got != tt.want {
				t.Errorf("parsePlaceholder(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []segment
	}{
		{
			name:  "plain text only",
			input: "just words",
			want:  []segment{{kind: segText, raw: "just words"}},
		},
		{
			name:  "token surrounded by text",
			input: "hey {{USER:42:ana}} hello",
			want: []segment{
				{kind: segText, raw: "hey "},
				{kind: segUser, raw: "{{USER:42:ana}}", id: "42", name: "ana"},
				{kind: segText, raw: " hello"},
			},
		},
		{
			name:  "adjacent tokens",
			input: "{{EVERYONE}}{{HERE}}",
			want: []segment{
				{kind: segEveryone, raw: "{{EVERYONE}}"},
				{kind: segHere, raw: "{{HERE}}"},
			},
		},
		{
			name:  "empty line",
			input: "",
			want:  nil,
		},
		{
			name:  "unterminated braces stay text",
			input: "a {{ROLE:1:x b",
			want:  []segment{{kind: segText, raw: "a {{ROLE:1:x b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := splitSegments(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitSegments(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
