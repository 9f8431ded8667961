package wapi

import (
	"sort"
	"strconv"
)

// Leaderboard maps a rank ("1", "2", ...) to its entry
type Leaderboard map[string]LeaderboardEntry

// Ranked returns the entries ordered by rank
func (l Leaderboard) Ranked() []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(l))
	for key, entry := range l {
		if entry.Rank == 0 {
			if rank, err := strconv.Atoi(key); err == nil {
				entry.Rank = rank
			}
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
	return entries
}

// LeaderboardEntry is one row of a leaderboard. Score is numeric for most
// boards but some boards report strings, so it is kept as a Value.
type LeaderboardEntry struct {
	Rank           int    `json:"rank,omitempty"`
	Name           string `json:"name"`
	UUID           string `json:"uuid,omitempty"`
	Prefix         string `json:"prefix,omitempty"`
	Score          Value  `json:"score"`
	Level          *int   `json:"level,omitempty"`
	CharacterClass string `json:"class,omitempty"`
	Guild          string `json:"guild,omitempty"`
}

// Class describes a playable class
type Class struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Playstyle   string           `json:"playstyle,omitempty"`
	Difficulty  Value            `json:"difficulty"`
	Abilities   map[string]Value `json:"abilities,omitempty"`
}

// NewsItem is a single news post
type NewsItem struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	URL      string `json:"url,omitempty"`
	Category string `json:"category,omitempty"`
}
