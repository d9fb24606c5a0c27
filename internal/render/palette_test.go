package render

import "testing"

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Mode
	}{
		{name: "dark", input: "dark", want: ModeDark},
		{name: "light", input: "light", want: ModeLight},
		{name: "empty falls back to light", input: "", want: ModeLight},
		{name: "unknown falls back to light", input: "sepia", want: ModeLight},
		{name: "case sensitive", input: "Dark", want: ModeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseMode(tt.input); got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
