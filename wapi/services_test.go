package wapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/wynnapi/wapi/wapitest"
)

func TestPlayerService(t *testing.T) {
	srv := wapitest.NewServer()
	defer srv.Close()

	srv.Handle("/v3/player/{name}", func(w http.ResponseWriter, r *http.Request) {
		p := Player{
			Username: wapitest.Param(r, "name"),
			UUID:     "e0b7e8f4-3bbd-4b4e-a0a1-2a3c4d5e6f70",
			Rank:     "Player",
			Guild:    &PlayerGuild{Name: "Avicia", Prefix: "AVO", Rank: "CHIEF"},
		}
		if r.URL.Query().Get("fullResult") == "True" {
			p.Characters = []Character{{Name: "main", Type: "MAGE", Level: 106}}
		}
		wapitest.WriteJSON(w, http.StatusOK, p)
	})
	srv.HandleJSON("/v3/player/{name}/character", CharacterList{
		Characters: []Character{{Name: "a", Type: "ARCHER"}, {Name: "b", Type: "SHAMAN"}},
	})
	srv.HandleJSON("/v3/player/{name}/character/{char}/ability", AbilityMap{
		Abilities: map[string]Ability{"arrowStorm": {Name: "Arrow Storm", Level: 1}},
	})
	srv.HandleJSON("/v3/player", OnlinePlayers{Players: []string{"a", "b", "c"}, Count: 3})

	c := newTestClient(t, srv)
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		res := c.Players.Get(ctx, "Salted")
		require.True(t, res.IsSuccess(), res.ErrorMessage())

		p := res.DataOrZero()
		assert.Equal(t, "Salted", p.Username)
		assert.True(t, p.InGuild())
		assert.Empty(t, p.Characters)

		id, err := p.ParsedUUID()
		require.NoError(t, err)
		assert.Equal(t, p.UUID, id.String())
		assert.Empty(t, srv.LastRequest().URL.RawQuery)
	})

	t.Run("get by dashless uuid", func(t *testing.T) {
		res := c.Players.Get(ctx, "E0B7E8F43BBD4B4EA0A12A3C4D5E6F70")
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		assert.Equal(t, "/v3/player/e0b7e8f4-3bbd-4b4e-a0a1-2a3c4d5e6f70", srv.LastRequest().URL.Path)
	})

	t.Run("get full", func(t *testing.T) {
		res := c.Players.GetFull(ctx, "Salted")
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		assert.Len(t, res.DataOrZero().Characters, 1)
		assert.Equal(t, "fullResult=True", srv.LastRequest().URL.RawQuery)
	})

	t.Run("characters", func(t *testing.T) {
		res := c.Players.Characters(ctx, "Salted")
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		assert.Len(t, res.DataOrZero(), 2)
	})

	t.Run("character abilities", func(t *testing.T) {
		res := c.Players.CharacterAbilities(ctx, "Salted", "abc-123")
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		assert.Equal(t, "/v3/player/Salted/character/abc-123/ability", srv.LastRequest().URL.Path)
		assert.Contains(t, res.DataOrZero().Abilities, "arrowStorm")
	})

	t.Run("online", func(t *testing.T) {
		count := c.Players.OnlineCount(ctx)
		require.True(t, count.IsSuccess())
		assert.Equal(t, 3, count.DataOrZero())

		names := c.Players.OnlineNames(ctx)
		require.True(t, names.IsSuccess())
		assert.Equal(t, []string{"a", "b", "c"}, names.DataOrZero())
	})

	t.Run("get many", func(t *testing.T) {
		results := c.Players.GetMany(ctx, []string{"one", "two", "three"})
		require.Len(t, results, 3)
		for name, res := range results {
			require.True(t, res.IsSuccess(), res.ErrorMessage())
			assert.Equal(t, name, res.DataOrZero().Username)
		}
	})
}

func TestPlayerID(t *testing.T) {
	tests := []struct {
		in       string
		wantID   string
		wantUUID bool
	}{
		{"Salted", "Salted", false},
		{"e0b7e8f4-3bbd-4b4e-a0a1-2a3c4d5e6f70", "e0b7e8f4-3bbd-4b4e-a0a1-2a3c4d5e6f70", true},
		{"e0b7e8f43bbd4b4ea0a12a3c4d5e6f70", "e0b7e8f4-3bbd-4b4e-a0a1-2a3c4d5e6f70", true},
		{"e0b7e8f43bbd4b4ea0a1", "e0b7e8f43bbd4b4ea0a1", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, isUUID := PlayerID(tt.in)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantUUID, isUUID)
		})
	}
}

func TestPlayerNotFound(t *testing.T) {
	srv := wapitest.NewServer()
	defer srv.Close()
	srv.HandleJSON("/v3/player", OnlinePlayers{})

	c := newTestClient(t, srv)
	res := c.Players.Get(context.Background(), "nobody")

	require.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, res.Err(), &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.True(t, apiErr.IsClientError())
	assert.False(t, apiErr.IsServerError())
}

func TestGuildService(t *testing.T) {
	srv := wapitest.NewServer()
	defer srv.Close()

	guild := Guild{
		Name:   "Avicia",
		Prefix: "AVO",
		Level:  100,
		Members: GuildMembers{
			Total: 2,
			Owner: map[string]GuildMember{"Salted": {}},
			Chief: map[string]GuildMember{"Other": {}},
		},
	}
	srv.HandleJSON("/v3/guild/{name}", guild)
	srv.HandleJSON("/v3/guild/prefix/{prefix}", guild)
	srv.HandleJSON("/v3/guild/list", GuildList{"Avicia": {Prefix: "AVO"}})
	srv.HandleJSON("/v3/guild/list/territory", Territories{
		"Ragni":  {Guild: TerritoryGuild{Name: "Avicia", Prefix: "AVO"}},
		"Detlas": {Guild: TerritoryGuild{Name: "Other", Prefix: "OTH"}},
	})

	c := newTestClient(t, srv)
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func() Result[Guild]
		wantPath  string
		wantQuery string
	}{
		{
			name:     "by name",
			call:     func() Result[Guild] { return c.Guilds.ByName(ctx, "Avicia") },
			wantPath: "/v3/guild/Avicia",
		},
		{
			name:      "by name with uuids",
			call:      func() Result[Guild] { return c.Guilds.ByNameWithUUIDs(ctx, "Avicia") },
			wantPath:  "/v3/guild/Avicia",
			wantQuery: "identifier=uuid",
		},
		{
			name:      "by prefix with usernames",
			call:      func() Result[Guild] { return c.Guilds.ByPrefixWithUsernames(ctx, "AVO") },
			wantPath:  "/v3/guild/prefix/AVO",
			wantQuery: "identifier=username",
		},
		{
			name:     "name with space",
			call:     func() Result[Guild] { return c.Guilds.ByName(ctx, "Avicia Army") },
			wantPath: "/v3/guild/Avicia Army",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.call()
			require.True(t, res.IsSuccess(), res.ErrorMessage())
			assert.Equal(t, "AVO", res.DataOrZero().Prefix)

			req := srv.LastRequest()
			assert.Equal(t, tt.wantPath, req.URL.Path)
			assert.Equal(t, tt.wantQuery, req.URL.RawQuery)
		})
	}

	t.Run("members by rank", func(t *testing.T) {
		g := c.Guilds.ByName(ctx, "Avicia").DataOrZero()
		ranks := g.Members.ByRank()
		require.NotEmpty(t, ranks)
		assert.Equal(t, "owner", ranks[0].Name)
		assert.Contains(t, ranks[0].Members, "Salted")
	})

	t.Run("list", func(t *testing.T) {
		res := c.Guilds.List(ctx)
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		assert.Contains(t, res.DataOrZero(), "Avicia")
	})

	t.Run("territories", func(t *testing.T) {
		res := c.Guilds.Territories(ctx)
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		assert.Equal(t, []string{"Ragni"}, res.DataOrZero().HeldBy("AVO"))
	})
}

func TestItemService(t *testing.T) {
	srv := wapitest.NewServer()
	defer srv.Close()

	next := 3
	srv.HandleJSON("/v3/item", ItemDatabase{
		Controller: PaginationController{Count: 20, Pages: 10, Current: 2, Next: &next},
		Results:    map[string]Item{"Cancer": {InternalName: "Cancer"}},
	})
	srv.HandleJSON("/v3/item/search/{query}", map[string]Item{
		"Cancer": {InternalName: "Cancer"},
	})

	c := newTestClient(t, srv)
	ctx := context.Background()

	t.Run("database page", func(t *testing.T) {
		res := c.Items.Database(ctx, 2)
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		assert.Equal(t, "page=2", srv.LastRequest().URL.RawQuery)

		db := res.DataOrZero()
		assert.True(t, db.Controller.HasNext())
		assert.Contains(t, db.Results, "Cancer")
	})

	t.Run("database without page", func(t *testing.T) {
		c.Items.Database(ctx)
		assert.Empty(t, srv.LastRequest().URL.RawQuery)
	})

	t.Run("level range", func(t *testing.T) {
		c.Items.ByLevelRange(ctx, 1, 50)
		assert.Equal(t, "levelMin=1&levelMax=50", srv.LastRequest().URL.RawQuery)
	})

	t.Run("get found", func(t *testing.T) {
		res := c.Items.Get(ctx, "Cancer")
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		assert.Equal(t, "Cancer", res.DataOrZero().InternalName)
	})

	t.Run("get missing", func(t *testing.T) {
		res := c.Items.Get(ctx, "Nope")
		require.True(t, res.IsFailure())
		assert.ErrorIs(t, res.Err(), ErrNotFound)
		assert.Equal(t, "Mapping failed: Item 'Nope' not found", res.ErrorMessage())
	})

	t.Run("advanced search is unsupported", func(t *testing.T) {
		before := srv.Requests()
		res := c.Items.Search(ctx, map[string]any{"type": "wand"})
		require.True(t, res.IsFailure())

		var valErr *ValidationError
		assert.ErrorAs(t, res.Err(), &valErr)
		assert.Equal(t, before, srv.Requests())
	})
}

func TestLeaderboardService(t *testing.T) {
	srv := wapitest.NewServer()
	defer srv.Close()
	srv.Handle("/v3/leaderboard/{type}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"2":{"name":"second","score":10},"1":{"name":"first","score":20}}`))
	})

	c := newTestClient(t, srv)
	res := c.Leaderboards.Get(context.Background(), "guildLevel")
	require.True(t, res.IsSuccess(), res.ErrorMessage())

	ranked := res.DataOrZero().Ranked()
	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)

	score, ok := ranked[0].Score.AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(20), score)
}

func TestNewsService(t *testing.T) {
	srv := wapitest.NewServer()
	defer srv.Close()
	srv.HandleJSON("/v3/news", []NewsItem{{Title: "Patch 2.1", Category: NewsPatches}})

	c := newTestClient(t, srv)
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func() Result[[]NewsItem]
		wantQuery string
	}{
		{"latest", func() Result[[]NewsItem] { return c.News.Latest(ctx) }, ""},
		{"latest limited", func() Result[[]NewsItem] { return c.News.Latest(ctx, 5) }, "limit=5"},
		{"patch notes", func() Result[[]NewsItem] { return c.News.PatchNotes(ctx) }, "category=patches"},
		{"announcements", func() Result[[]NewsItem] { return c.News.Announcements(ctx) }, "category=announcements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.call()
			require.True(t, res.IsSuccess(), res.ErrorMessage())
			assert.Len(t, res.DataOrZero(), 1)
			assert.Equal(t, tt.wantQuery, srv.LastRequest().URL.RawQuery)
		})
	}
}

func TestOpenShapeEndpoints(t *testing.T) {
	srv := wapitest.NewServer()
	defer srv.Close()

	body := map[string]any{"players": map[string]any{"Salted": "uuid"}, "guilds": map[string]any{}}
	srv.HandleJSON("/v3/search/{query}", body)
	srv.HandleJSON("/v3/abilities", map[string]any{"archer": []any{}})
	srv.HandleJSON("/v3/map/markers", []any{map[string]any{"name": "Ragni", "x": -900}})
	srv.HandleJSON("/v3/classes/{name}", Class{Name: "Mage", Description: "magic"})

	c := newTestClient(t, srv)
	ctx := context.Background()

	t.Run("search", func(t *testing.T) {
		res := c.Search.All(ctx, "Salted")
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		players, ok := res.DataOrZero().Get("players")
		require.True(t, ok)
		assert.Equal(t, KindObject, players.Kind())
	})

	t.Run("abilities by class", func(t *testing.T) {
		res := c.Abilities.ByClass(ctx, ClassArcher)
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		assert.Equal(t, "class=archer", srv.LastRequest().URL.RawQuery)
	})

	t.Run("markers", func(t *testing.T) {
		res := c.Map.Markers(ctx)
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		first, ok := res.DataOrZero().Index(0)
		require.True(t, ok)
		x, _ := first.Get("x")
		n, ok := x.AsInt()
		require.True(t, ok)
		assert.Equal(t, int64(-900), n)
	})

	t.Run("class", func(t *testing.T) {
		res := c.Classes.Mage(ctx)
		require.True(t, res.IsSuccess(), res.ErrorMessage())
		assert.Equal(t, "/v3/classes/mage", srv.LastRequest().URL.Path)
		assert.Equal(t, "Mage", res.DataOrZero().Name)
	})
}

func TestOpenShapePaths(t *testing.T) {
	srv := wapitest.NewServer()
	defer srv.Close()
	srv.HandleJSON("/v3/*", map[string]any{"ok": true})

	c := newTestClient(t, srv)
	ctx := context.Background()

	tests := []struct {
		name     string
		call     func() Result[Value]
		wantPath string
	}{
		{"abilities", func() Result[Value] { return c.Abilities.All(ctx) }, "/v3/abilities"},
		{"ability", func() Result[Value] { return c.Abilities.Get(ctx, "Bash") }, "/v3/abilities/Bash"},
		{"aspects", func() Result[Value] { return c.Abilities.Aspects(ctx) }, "/v3/aspects"},
		{"aspect", func() Result[Value] { return c.Abilities.Aspect(ctx, "Acolyte") }, "/v3/aspects/Acolyte"},
		{"locations", func() Result[Value] { return c.Map.Locations(ctx) }, "/v3/map/locations"},
		{"location", func() Result[Value] { return c.Map.Location(ctx, "Ragni") }, "/v3/map/location/Ragni"},
		{"search players", func() Result[Value] { return c.Search.Players(ctx, "Sal") }, "/v3/search/player/Sal"},
		{"search guilds", func() Result[Value] { return c.Search.Guilds(ctx, "Imp") }, "/v3/search/guild/Imp"},
		{"search items", func() Result[Value] { return c.Search.Items(ctx, "Idol") }, "/v3/search/item/Idol"},
		{"classes", func() Result[Value] { return c.Classes.All(ctx) }, "/v3/classes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.call()
			require.True(t, res.IsSuccess(), res.ErrorMessage())
			assert.Equal(t, tt.wantPath, srv.LastRequest().URL.Path)
			ok, _ := res.DataOrZero().Get("ok")
			b, _ := ok.AsBool()
			assert.True(t, b)
		})
	}
}
