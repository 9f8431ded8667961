package wapi

import (
	"github.com/google/uuid"
)

// Player represents the /v3/player/{username} payload
type Player struct {
	Username     string       `json:"username"`
	UUID         string       `json:"uuid"`
	Rank         string       `json:"rank"`
	Contribution string       `json:"contribution,omitempty"`
	FirstJoin    string       `json:"firstJoin"`
	LastJoin     string       `json:"lastJoin"`
	LastSeen     string       `json:"lastSeen,omitempty"`
	Playtime     float64      `json:"playtime"`
	Online       bool         `json:"online"`
	Server       string       `json:"server,omitempty"`
	Guild        *PlayerGuild `json:"guild,omitempty"`
	Characters   []Character  `json:"characters,omitempty"`
	Meta         *PlayerMeta  `json:"meta,omitempty"`
}

// ParsedUUID parses the player's UUID field
func (p *Player) ParsedUUID() (uuid.UUID, error) {
	return uuid.Parse(p.UUID)
}

// InGuild reports whether the player belongs to a guild
func (p *Player) InGuild() bool {
	return p.Guild != nil && p.Guild.Name != ""
}

// PlayerGuild is the guild summary embedded in a player
type PlayerGuild struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix,omitempty"`
	Rank   string `json:"rank"`
}

// PlayerMeta holds location data for a player
type PlayerMeta struct {
	Location  string `json:"location,omitempty"`
	Server    string `json:"server,omitempty"`
	FirstJoin int64  `json:"firstJoin,omitempty"`
	LastJoin  int64  `json:"lastJoin,omitempty"`
}

// Character is a single character of a player
type Character struct {
	Name        string                     `json:"name"`
	Type        string                     `json:"type"`
	Level       int                        `json:"level"`
	XP          int64                      `json:"xp"`
	Professions map[string]ProfessionLevel `json:"professions,omitempty"`
	Dungeons    map[string]Completions     `json:"dungeons,omitempty"`
	Raids       map[string]Completions     `json:"raids,omitempty"`
	Quests      map[string]QuestProgress   `json:"quests,omitempty"`
	Items       map[string]CharacterItem   `json:"items,omitempty"`
	Skills      map[string]ProfessionLevel `json:"skills,omitempty"`
}

// ProfessionLevel is a level/xp pair used for professions and skills
type ProfessionLevel struct {
	Level int   `json:"level"`
	XP    int64 `json:"xp"`
}

// Completions counts dungeon or raid clears
type Completions struct {
	Completed   int `json:"completed"`
	Completions int `json:"completions"`
}

// QuestProgress tracks a quest for a character
type QuestProgress struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// CharacterItem is an item held by a character
type CharacterItem struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
	Level  int    `json:"level"`
}

// CharacterList is the /character listing of a player
type CharacterList struct {
	Characters []Character `json:"characters"`
}

// AbilityMap is a character's ability tree
type AbilityMap struct {
	Abilities map[string]Ability `json:"abilities"`
}

// Ability is a single node of an ability tree
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	MaxLevel    int    `json:"maxLevel"`
}

// OnlinePlayers is the /v3/player listing
type OnlinePlayers struct {
	Players []string `json:"players"`
	Count   int      `json:"count"`
}
