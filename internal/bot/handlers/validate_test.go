package handlers

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestValidateTarget(t *testing.T) {
	t.Parallel()

	human := &discordgo.User{ID: "u1", Username: "alice"}
	bot := &discordgo.User{ID: "u2", Username: "beep", Bot: true}

	tests := []struct {
		name      string
		target    *discordgo.Message
		wordLimit int
		charLimit int
		wantErr   error
	}{
		{
			name:      "nil target",
			target:    nil,
			wordLimit: 200,
			charLimit: 2000,
			wantErr:   ErrNoTarget,
		},
		{
			name:      "missing author",
			target:    &discordgo.Message{Content: "hi"},
			wordLimit: 200,
			charLimit: 2000,
			wantErr:   ErrNoTarget,
		},
		{
			name:      "bot author",
			target:    &discordgo.Message{Author: bot, Content: "hi"},
			wordLimit: 200,
			charLimit: 2000,
			wantErr:   ErrBotAuthor,
		},
		{
			name:      "bot author checked before limits",
			target:    &discordgo.Message{Author: bot, Content: "far too many words here"},
			wordLimit: 2,
			charLimit: 5,
			wantErr:   ErrBotAuthor,
		},
		{
			name:      "at word limit",
			target:    &discordgo.Message{Author: human, Content: "one two three"},
			wordLimit: 3,
			charLimit: 2000,
			wantErr:   nil,
		},
		{
			name:      "over word limit",
			target:    &discordgo.Message{Author: human, Content: "one two three four"},
			wordLimit: 3,
			charLimit: 2000,
			wantErr:   ErrTooManyWords,
		},
		{
			name:      "repeated spaces count words not gaps",
			target:    &discordgo.Message{Author: human, Content: "one   two   three"},
			wordLimit: 3,
			charLimit: 2000,
			wantErr:   nil,
		},
		{
			name:      "at char limit with multibyte runes",
			target:    &discordgo.Message{Author: human, Content: strings.Repeat("é", 10)},
			wordLimit: 200,
			charLimit: 10,
			wantErr:   nil,
		},
		{
			name:      "over char limit counts runes not bytes",
			target:    &discordgo.Message{Author: human, Content: strings.Repeat("é", 11)},
			wordLimit: 200,
			charLimit: 10,
			wantErr:   ErrTooManyChars,
		},
		{
			name:      "ok",
			target:    &discordgo.Message{Author: human, Content: "hello there"},
			wordLimit: 200,
			charLimit: 2000,
			wantErr:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateTarget(tt.target, tt.wordLimit, tt.charLimit)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTarget() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsTrigger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		trigger string
		want    bool
	}{
		{name: "exact trigger", content: "!ss", trigger: "!ss", want: true},
		{name: "trigger with arguments", content: "!ss please", trigger: "!ss", want: true},
		{name: "surrounding whitespace", content: "  !ss  ", trigger: "!ss", want: true},
		{name: "prefix of longer word", content: "!ssomething", trigger: "!ss", want: false},
		{name: "trigger mid-sentence", content: "use !ss here", trigger: "!ss", want: false},
		{name: "empty content", content: "", trigger: "!ss", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isTrigger(tt.content, tt.trigger); got != tt.want {
				t.Errorf("isTrigger(%q, %q) = %v, want %v", tt.content, tt.trigger, got, tt.want)
			}
		})
	}
}
