package placeholder

import (
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Placeholder tokens.
const (
	TokenUser            = "{user}"
	TokenUserMention     = "{user.mention}"
	TokenUserName        = "{user.name}"
	TokenUserID          = "{user.id}"
	TokenUserAvatar      = "{user.avatar}"
	TokenUserDisplayName = "{user.display_name}"
	TokenUserCreatedAt   = "{user.created_at}"
	TokenUserJoinedAt    = "{user.joined_at}"
	TokenUserBoost       = "{user.boost}"

	TokenGuildName       = "{guild.name}"
	TokenGuildID         = "{guild.id}"
	TokenGuildCount      = "{guild.count}"
	TokenGuildIcon       = "{guild.icon}"
	TokenGuildBoostCount = "{guild.boost_count}"
	TokenGuildOwnerID    = "{guild.owner_id}"

	TokenTrack      = "{track}"
	TokenTrackURL   = "{track.url}"
	TokenTrackImage = "{track.image}"
	TokenTrackPlays = "{track.plays}"
	TokenArtist     = "{artist}"
	TokenArtistURL  = "{artist.url}"
	TokenAlbum      = "{album}"
	TokenAlbumURL   = "{album.url}"
)

// AllTokens lists every token Context.Values produces.
var AllTokens = []string{
	TokenUser, TokenUserMention, TokenUserName, TokenUserID, TokenUserAvatar,
	TokenUserDisplayName, TokenUserCreatedAt, TokenUserJoinedAt, TokenUserBoost,
	TokenGuildName, TokenGuildID, TokenGuildCount, TokenGuildIcon,
	TokenGuildBoostCount, TokenGuildOwnerID,
	TokenTrack, TokenTrackURL, TokenTrackImage, TokenTrackPlays,
	TokenArtist, TokenArtistURL, TokenAlbum, TokenAlbumURL,
}

// dateLayout formats creation and join dates.
const dateLayout = "January 2, 2006"

// Track describes the invoking user's now-playing track.
type Track struct {
	Name      string `json:"name" yaml:"name"`
	URL       string `json:"url" yaml:"url"`
	Image     string `json:"image" yaml:"image"`
	Plays     int    `json:"plays" yaml:"plays"`
	Artist    string `json:"artist" yaml:"artist"`
	ArtistURL string `json:"artist_url" yaml:"artist_url"`
	Album     string `json:"album" yaml:"album"`
	AlbumURL  string `json:"album_url" yaml:"album_url"`
}

// Context holds the runtime objects placeholder values are derived from.
// Any of them may be nil.
type Context struct {
	User   *discordgo.User
	Member *discordgo.Member
	Guild  *discordgo.Guild
	Track  *Track
}

// Values derives placeholder values from the context. Every token in
// AllTokens is present; values that are not available are empty.
func (c Context) Values() Values {
	v := make(Values, len(AllTokens))
	for _, token := range AllTokens {
		v[token] = ""
	}

	user := c.User
	if user == nil && c.Member != nil {
		user = c.Member.User
	}
	if user != nil {
		v[TokenUser] = user.String()
		v[TokenUserMention] = user.Mention()
		v[TokenUserName] = user.Username
		v[TokenUserID] = user.ID
		v[TokenUserAvatar] = user.AvatarURL("")
		v[TokenUserDisplayName] = displayName(user, c.Member)
		if created, err := discordgo.SnowflakeTimestamp(user.ID); err == nil {
			v[TokenUserCreatedAt] = created.UTC().Format(dateLayout)
		}
	}

	if c.Member != nil {
		if !c.Member.JoinedAt.IsZero() {
			v[TokenUserJoinedAt] = c.Member.JoinedAt.UTC().Format(dateLayout)
		}
		v[TokenUserBoost] = boostSince(c.Member.PremiumSince)
	}

	if g := c.Guild; g != nil {
		v[TokenGuildName] = g.Name
		v[TokenGuildID] = g.ID
		v[TokenGuildCount] = strconv.Itoa(g.MemberCount)
		if g.Icon != "" {
			v[TokenGuildIcon] = discordgo.EndpointGuildIcon(g.ID, g.Icon)
		}
		v[TokenGuildBoostCount] = strconv.Itoa(g.PremiumSubscriptionCount)
		v[TokenGuildOwnerID] = g.OwnerID
	}

	if t := c.Track; t != nil {
		v[TokenTrack] = t.Name
		v[TokenTrackURL] = t.URL
		v[TokenTrackImage] = t.Image
		v[TokenTrackPlays] = strconv.Itoa(t.Plays)
		v[TokenArtist] = t.Artist
		v[TokenArtistURL] = t.ArtistURL
		v[TokenAlbum] = t.Album
		v[TokenAlbumURL] = t.AlbumURL
	}

	return v
}

// displayName prefers the guild nickname, then the global name, then the username.
func displayName(user *discordgo.User, member *discordgo.Member) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

func boostSince(since *time.Time) string {
	if since == nil || since.IsZero() {
		return "No"
	}
	return "Since " + since.UTC().Format(dateLayout)
}
