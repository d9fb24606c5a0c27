package render

import "strings"

// RoleMention and UserMention carry the structured mention data attached
// to a source message. Tokenize uses them to rewrite raw mention markup
// into the placeholder grammar the renderer understands.
type RoleMention struct {
	ID   string
	Name string
}

type UserMention struct {
	ID          string
	DisplayName string
}

// Tokenize rewrites platform mention markup (<@&id>, <@!id>, <@id>,
// @everyone, @here) into {{...}} placeholder tokens. Text without
// mentions passes through unchanged; literal {{ or }} in the message is
// not escaped and may be picked up by the placeholder scanner later.
func Tokenize(content string, roles []RoleMention, users []UserMention) string {
	out := content
	for _, r := range roles {
		out = strings.ReplaceAll(out, "<@&"+r.ID+">", "{{ROLE:"+r.ID+":"+r.Name+"}}")
	}
	for _, u := range users {
		token := "{{USER:" + u.ID + ":" + u.DisplayName + "}}"
		out = strings.ReplaceAll(out, "<@!"+u.ID+">", token)
		out = strings.ReplaceAll(out, "<@"+u.ID+">", token)
	}
	out = strings.ReplaceAll(out, "@everyone", "{{EVERYONE}}")
	out = strings.ReplaceAll(out, "@here", "{{HERE}}")
	return out
}
