package wapi

// Guild represents the /v3/guild/{name} payload
type Guild struct {
	UUID        string                `json:"uuid"`
	Name        string                `json:"name"`
	Prefix      string                `json:"prefix"`
	Level       int                   `json:"level"`
	XPPercent   int                   `json:"xpPercent"`
	Territories int                   `json:"territories"`
	Wars        int                   `json:"wars"`
	Created     string                `json:"created"`
	Members     GuildMembers          `json:"members"`
	Online      int                   `json:"online"`
	Banner      *GuildBanner          `json:"banner,omitempty"`
	SeasonRanks map[string]SeasonRank `json:"seasonRanks,omitempty"`
}

// GuildMembers groups members by guild rank. Keys are usernames or UUIDs
// depending on the identifier requested.
type GuildMembers struct {
	Total      int                    `json:"total"`
	Owner      map[string]GuildMember `json:"owner,omitempty"`
	Chief      map[string]GuildMember `json:"chief,omitempty"`
	Strategist map[string]GuildMember `json:"strategist,omitempty"`
	Captain    map[string]GuildMember `json:"captain,omitempty"`
	Recruiter  map[string]GuildMember `json:"recruiter,omitempty"`
	Recruit    map[string]GuildMember `json:"recruit,omitempty"`
}

// ByRank returns the ranks from highest to lowest with their members
func (m *GuildMembers) ByRank() []GuildRank {
	return []GuildRank{
		{Name: "owner", Members: m.Owner},
		{Name: "chief", Members: m.Chief},
		{Name: "strategist", Members: m.Strategist},
		{Name: "captain", Members: m.Captain},
		{Name: "recruiter", Members: m.Recruiter},
		{Name: "recruit", Members: m.Recruit},
	}
}

// GuildRank is one rank bucket returned by ByRank
type GuildRank struct {
	Name    string
	Members map[string]GuildMember
}

// GuildMember is a single member entry
type GuildMember struct {
	Username         string `json:"username,omitempty"`
	UUID             string `json:"uuid,omitempty"`
	Online           bool   `json:"online"`
	Server           string `json:"server,omitempty"`
	Contributed      int64  `json:"contributed"`
	GuildRank        int    `json:"guildRank"`
	ContributionRank *int   `json:"contributionRank,omitempty"`
	Joined           string `json:"joined"`
}

// GuildBanner describes a guild's banner
type GuildBanner struct {
	Base      string        `json:"base"`
	Tier      int           `json:"tier"`
	Structure string        `json:"structure"`
	Layers    []BannerLayer `json:"layers"`
}

// BannerLayer is a single banner pattern
type BannerLayer struct {
	Colour  string `json:"colour"`
	Pattern string `json:"pattern"`
}

// SeasonRank is a guild's result for one season
type SeasonRank struct {
	Rating           int `json:"rating"`
	FinalTerritories int `json:"finalTerritories"`
}

// GuildList maps guild names or UUIDs to a summary entry
type GuildList map[string]GuildListEntry

// GuildListEntry is a summary of one guild
type GuildListEntry struct {
	UUID        string `json:"uuid,omitempty"`
	Name        string `json:"name,omitempty"`
	Prefix      string `json:"prefix"`
	Level       *int   `json:"level,omitempty"`
	Territories *int   `json:"territories,omitempty"`
	Wars        *int   `json:"wars,omitempty"`
	Members     *int   `json:"members,omitempty"`
	Created     string `json:"created,omitempty"`
}

// Territories maps territory names to their current holder
type Territories map[string]Territory

// HeldBy returns the territory names held by the guild with the given prefix
func (t Territories) HeldBy(prefix string) []string {
	var names []string
	for name, terr := range t {
		if terr.Guild.Prefix == prefix {
			names = append(names, name)
		}
	}
	return names
}

// Territory is a single map territory
type Territory struct {
	Guild    TerritoryGuild    `json:"guild"`
	Acquired string            `json:"acquired"`
	Location TerritoryLocation `json:"location"`
}

// TerritoryGuild is the guild holding a territory
type TerritoryGuild struct {
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

// TerritoryLocation is the bounding box of a territory
type TerritoryLocation struct {
	Start []int `json:"start"`
	End   []int `json:"end"`
}
