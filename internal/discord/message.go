package discord

import (
	"image/color"

	"github.com/bwmarrin/discordgo"

	"github.com/voidxprt/screenshotbotv1-discord/internal/render"
)

// MessageMentions builds the structured mention lists the tokenizer
// needs from a message, resolving display names through the resolver.
func MessageMentions(msg *discordgo.Message, resolver *GuildResolver) ([]render.RoleMention, []render.UserMention) {
	var roles []render.RoleMention
	for _, id := range msg.MentionRoles {
		role, ok := resolver.ResolveRole(id)
		if !ok {
			continue
		}
		roles = append(roles, render.RoleMention{ID: id, Name: role.Name})
	}

	var users []render.UserMention
	for _, u := range msg.Mentions {
		if u == nil {
			continue
		}
		name := u.Username
		if u.GlobalName != "" {
			name = u.GlobalName
		}
		if resolved, ok := resolver.ResolveUser(u.ID); ok && resolved.DisplayName != "" {
			name = resolved.DisplayName
		}
		users = append(users, render.UserMention{ID: u.ID, DisplayName: name})
	}
	return roles, users
}

// DisplayNameOf resolves a user's guild display name, falling back to the
// global display name and then the username.
func DisplayNameOf(user *discordgo.User, resolver *GuildResolver) string {
	if user == nil {
		return ""
	}
	if resolved, ok := resolver.ResolveUser(user.ID); ok && resolved.DisplayName != "" {
		return resolved.DisplayName
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// AvatarURL picks the member's guild avatar when set, otherwise the
// account avatar.
func AvatarURL(s *discordgo.Session, guildID string, user *discordgo.User) string {
	if user == nil {
		return ""
	}
	if member, err := s.State.Member(guildID, user.ID); err == nil && member.Avatar != "" {
		return member.AvatarURL("128")
	}
	return user.AvatarURL("128")
}

// TopRoleColor returns the color of the member's highest explicitly
// colored role, or nil when every role uses the default color.
func TopRoleColor(s *discordgo.Session, guildID, userID string) *color.RGBA {
	member, err := s.State.Member(guildID, userID)
	if err != nil {
		member, err = s.GuildMember(guildID, userID)
		if err != nil {
			return nil
		}
	}

	byID := make(map[string]*discordgo.Role)
	if guild, err := s.State.Guild(guildID); err == nil {
		for _, role := range guild.Roles {
			byID[role.ID] = role
		}
	}
	if len(byID) == 0 {
		roles, err := s.GuildRoles(guildID)
		if err != nil {
			return nil
		}
		for _, role := range roles {
			byID[role.ID] = role
		}
	}

	top := topColoredRole(member.Roles, byID)
	if top == nil {
		return nil
	}
	c := roleColor(top.Color)
	return &c
}

// topColoredRole picks the highest-positioned role that carries an
// explicit color. Colorless roles never win, even when positioned above
// every colored one; that is how the client picks name colors.
func topColoredRole(roleIDs []string, byID map[string]*discordgo.Role) *discordgo.Role {
	var top *discordgo.Role
	for _, id := range roleIDs {
		role, ok := byID[id]
		if !ok || role.Color == 0 {
			continue
		}
		if top == nil || role.Position > top.Position {
			top = role
		}
	}
	return top
}
