package discord

import (
	"image/color"

	"github.com/bwmarrin/discordgo"

	"github.com/voidxprt/screenshotbotv1-discord/internal/render"
)

// GuildResolver resolves mention IDs against one guild, preferring the
// session state cache and falling back to the REST API when cold.
type GuildResolver struct {
	session *discordgo.Session
	guildID string
}

// NewGuildResolver returns a resolver scoped to guildID.
func NewGuildResolver(session *discordgo.Session, guildID string) *GuildResolver {
	return &GuildResolver{session: session, guildID: guildID}
}

// ResolveRole implements render.MentionResolver.
func (r *GuildResolver) ResolveRole(id string) (render.Role, bool) {
	role := r.lookupRole(id)
	if role == nil {
		return render.Role{}, false
	}
	return render.Role{
		Name:     role.Name,
		Color:    roleColor(role.Color),
		HasColor: role.Color != 0,
	}, true
}

// ResolveUser implements render.MentionResolver.
func (r *GuildResolver) ResolveUser(id string) (render.User, bool) {
	member := r.lookupMember(id)
	if member == nil {
		return render.User{}, false
	}
	return render.User{DisplayName: memberDisplayName(member)}, true
}

func (r *GuildResolver) lookupRole(id string) *discordgo.Role {
	if role, err := r.session.State.Role(r.guildID, id); err == nil {
		return role
	}
	roles, err := r.session.GuildRoles(r.guildID)
	if err != nil {
		return nil
	}
	for _, role := range roles {
		if role.ID == id {
			return role
		}
	}
	return nil
}

func (r *GuildResolver) lookupMember(id string) *discordgo.Member {
	if member, err := r.session.State.Member(r.guildID, id); err == nil {
		return member
	}
	member, err := r.session.GuildMember(r.guildID, id)
	if err != nil {
		return nil
	}
	return member
}

// memberDisplayName mirrors the client's display precedence: guild nick,
// then global display name, then username.
func memberDisplayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User != nil {
		if m.User.GlobalName != "" {
			return m.User.GlobalName
		}
		return m.User.Username
	}
	return ""
}

// roleColor converts the platform's packed RGB integer to a color.RGBA.
func roleColor(value int) color.RGBA {
	return color.RGBA{
		R: uint8((value >> 16) & 0xff),
		G: uint8((value >> 8) & 0xff),
		B: uint8(value & 0xff),
		A: 0xff,
	}
}
