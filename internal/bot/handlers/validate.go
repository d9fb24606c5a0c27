package handlers

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// Validation failures for the screenshot command. The handler maps each
// to a user-facing notice.
var (
	ErrNoTarget     = errors.New("no reply target")
	ErrBotAuthor    = errors.New("target message was written by a bot")
	ErrTooManyWords = errors.New("target message exceeds the word limit")
	ErrTooManyChars = errors.New("target message exceeds the character limit")
)

// ValidateTarget checks the preconditions the renderer assumes: a
// human-authored reply target within the word and character limits.
func ValidateTarget(target *discordgo.Message, wordLimit, charLimit int) error {
	if target == nil || target.Author == nil {
		return ErrNoTarget
	}
	if target.Author.Bot {
		return ErrBotAuthor
	}
	if len(strings.Fields(target.Content)) > wordLimit {
		return ErrTooManyWords
	}
	if utf8.RuneCountInString(target.Content) > charLimit {
		return ErrTooManyChars
	}
	return nil
}

// isTrigger reports whether the message invokes the screenshot command:
// the trigger alone or followed by more text.
func isTrigger(content, trigger string) bool {
	content = strings.TrimSpace(content)
	return content == trigger || strings.HasPrefix(content, trigger+" ")
}
