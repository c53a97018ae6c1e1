package dtos

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/Fripe070/experienced/internal/common"
)

// MemberDisplayInfo is the denormalized display record kept in the user
// cache: everything needed to address a member without another API fetch.
type MemberDisplayInfo struct {
	ID          uint64  `json:"id,string"`
	Name        string  `json:"name"`
	GlobalName  *string `json:"global_name,omitempty"`
	Nick        *string `json:"nick,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
	GuildAvatar *string `json:"guild_avatar,omitempty"`
	Bot         bool    `json:"bot"`
}

// DisplayName applies the precedence guild nickname, then global display
// name, then base username.
func (m MemberDisplayInfo) DisplayName() string {
	if m.Nick != nil && *m.Nick != "" {
		return *m.Nick
	}
	if m.GlobalName != nil && *m.GlobalName != "" {
		return *m.GlobalName
	}
	return m.Name
}

// AvatarURL returns the CDN address of the member's avatar. Members without
// an uploaded avatar get one of Discord's index-derived default avatars.
func (m MemberDisplayInfo) AvatarURL() string {
	if m.Avatar != nil && *m.Avatar != "" {
		return fmt.Sprintf("https://cdn.discordapp.com/avatars/%d/%s.png?size=256", m.ID, *m.Avatar)
	}
	return fmt.Sprintf("https://cdn.discordapp.com/embed/avatars/%d.png", (m.ID>>22)%6)
}

// DisplayInfoFromUser builds a display record from a bare user object.
// Nickname and guild avatar only exist on member records.
func DisplayInfoFromUser(user *discordgo.User) (MemberDisplayInfo, error) {
	id, err := common.ParseID(user.ID)
	if err != nil {
		return MemberDisplayInfo{}, err
	}
	info := MemberDisplayInfo{
		ID:   id,
		Name: user.Username,
		Bot:  user.Bot,
	}
	if user.GlobalName != "" {
		info.GlobalName = &user.GlobalName
	}
	if user.Avatar != "" {
		info.Avatar = &user.Avatar
	}
	return info, nil
}

// DisplayInfoFromMember merges a member record with its embedded user record.
func DisplayInfoFromMember(member *discordgo.Member) (MemberDisplayInfo, error) {
	if member.User == nil {
		return MemberDisplayInfo{}, ErrNoUser
	}
	info, err := DisplayInfoFromUser(member.User)
	if err != nil {
		return MemberDisplayInfo{}, err
	}
	if member.Nick != "" {
		info.Nick = &member.Nick
	}
	if member.Avatar != "" {
		info.GuildAvatar = &member.Avatar
	}
	return info, nil
}
