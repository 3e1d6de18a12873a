package basketapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoopscout/internal/domain/team"
	"github.com/riskibarqy/hoopscout/internal/platform/cache"
	"github.com/riskibarqy/hoopscout/internal/platform/resilience"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

type directory map[int64]team.Team

func (d directory) Division(id int64) team.Division { return d[id].Division }
func (d directory) Name(id int64) string            { return d[id].Name }

var testTeams = directory{
	10: {ID: 10, Name: "North Club", Division: team.DivisionNorth},
	20: {ID: 20, Name: "South Club", Division: team.DivisionSouth},
}

type fakeOrigin struct {
	server *httptest.Server
	hits   atomic.Int32
	paths  chan string
}

func newOrigin(t *testing.T, handler http.HandlerFunc) *fakeOrigin {
	t.Helper()
	o := &fakeOrigin{paths: make(chan string, 64)}
	o.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o.hits.Add(1)
		select {
		case o.paths <- r.URL.Path:
		default:
		}
		handler(w, r)
	}))
	t.Cleanup(o.server.Close)
	return o
}

func jsonBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
}

func newTestClient(south, north, canonical *fakeOrigin) *Client {
	return NewClient(ClientConfig{
		HTTPClient:      &http.Client{},
		SouthURL:        south.server.URL,
		NorthURL:        north.server.URL,
		CanonicalURL:    canonical.server.URL,
		APIKey:          "secret",
		RatePerSecond:   1000,
		MetadataTimeout: time.Second,
		ListingTimeout:  time.Second,
		CircuitBreaker:  resilience.BreakerConfig{Enabled: false},
		Teams:           testTeams,
		Cache:           cache.NewStore(),
	})
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	t.Parallel()

	var gotKey, gotAccept atomic.Value
	south := newOrigin(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey.Store(r.Header.Get("X-API-Key"))
		gotAccept.Store(r.Header.Get("accept"))
		jsonBody(`{"firstName":"Anna","lastName":"Berg","id":7.0}`)(w, r)
	})
	north := newOrigin(t, status(http.StatusInternalServerError))
	canonical := newOrigin(t, status(http.StatusInternalServerError))

	p, err := newTestClient(south, north, canonical).GetPlayer(context.Background(), "7.0")
	require.NoError(t, err)
	assert.Equal(t, "7", p.ID)
	assert.Equal(t, "secret", gotKey.Load())
	assert.Equal(t, "application/json", gotAccept.Load())
}

func TestClient_NorthTeamTriesNorthFirst(t *testing.T) {
	t.Parallel()

	south := newOrigin(t, jsonBody(`{"gamesPlayed":2,"points":150}`))
	north := newOrigin(t, status(http.StatusBadGateway))
	canonical := newOrigin(t, status(http.StatusInternalServerError))
	client := newTestClient(south, north, canonical)

	stats, err := client.GetTeamSeasonStats(context.Background(), 2025, 10)
	require.NoError(t, err)
	assert.Equal(t, 150, stats.Totals.Points)
	assert.Equal(t, int32(1), north.hits.Load())
	assert.Equal(t, int32(1), south.hits.Load())
	assert.Equal(t, int32(0), canonical.hits.Load(), "stats never go to the canonical index")
}

func TestClient_SouthTeamStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	south := newOrigin(t, jsonBody(`[]`))
	north := newOrigin(t, jsonBody(`[]`))
	canonical := newOrigin(t, status(http.StatusInternalServerError))

	_, err := newTestClient(south, north, canonical).ListTeamPlayerStats(context.Background(), 2025, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(1), south.hits.Load())
	assert.Equal(t, int32(0), north.hits.Load())
}

func TestClient_TeamDetailUsesCanonicalFirstAndCaches(t *testing.T) {
	t.Parallel()

	south := newOrigin(t, status(http.StatusInternalServerError))
	north := newOrigin(t, status(http.StatusInternalServerError))
	canonical := newOrigin(t, jsonBody(`{"data":{"id":10,"seasonTeam":{"name":"Luchse"}}}`))
	client := newTestClient(south, north, canonical)

	for i := 0; i < 3; i++ {
		got, err := client.GetTeam(context.Background(), 2025, 10)
		require.NoError(t, err)
		assert.Equal(t, "Luchse", got.Name)
		assert.Equal(t, team.DivisionNorth, got.Division)
		assert.Equal(t, canonical.server.URL+"/images/teams/logo/2025/10", got.LogoURI)
	}
	assert.Equal(t, int32(1), canonical.hits.Load())
	assert.Equal(t, int32(0), north.hits.Load()+south.hits.Load())
}

func TestClient_AllOriginsDownIsOriginUnavailable(t *testing.T) {
	t.Parallel()

	south := newOrigin(t, status(http.StatusServiceUnavailable))
	north := newOrigin(t, status(http.StatusInternalServerError))
	canonical := newOrigin(t, status(http.StatusBadGateway))
	client := newTestClient(south, north, canonical)

	_, err := client.GetTeam(context.Background(), 2025, 20)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrOriginUnavailable))

	var unavailable *OriginUnavailableError
	require.True(t, errors.As(err, &unavailable))
	require.Len(t, unavailable.Attempts, 3)
	assert.Equal(t, []OriginID{OriginCanonical, OriginSouth, OriginNorth}, []OriginID{
		unavailable.Attempts[0].Origin, unavailable.Attempts[1].Origin, unavailable.Attempts[2].Origin,
	})

	// failures are not cached
	_, err = client.GetTeam(context.Background(), 2025, 20)
	require.Error(t, err)
	assert.Equal(t, int32(2), canonical.hits.Load())
}

func TestClient_AllNotFoundIsNotFound(t *testing.T) {
	t.Parallel()

	south := newOrigin(t, status(http.StatusNotFound))
	north := newOrigin(t, status(http.StatusNotFound))
	canonical := newOrigin(t, status(http.StatusNotFound))

	_, err := newTestClient(south, north, canonical).GetGame(context.Background(), "999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrNotFound))
	assert.False(t, errors.Is(err, usecase.ErrOriginUnavailable))
}

func TestClient_RecentGamesMergesBothOrigins(t *testing.T) {
	t.Parallel()

	south := newOrigin(t, jsonBody(`[
		{"id":"3","scheduledTime":"2026-10-04T15:00:00Z","status":"SCHEDULED"},
		{"id":"1","scheduledTime":"2026-10-03T15:00:00Z","status":"ENDED","result":{"homeTeamFinalScore":70,"guestTeamFinalScore":61}}
	]`))
	north := newOrigin(t, jsonBody(`{"games":[
		{"id":1.0,"scheduledTime":"2026-10-03T15:00:00Z","status":"ENDED"},
		{"id":"2","scheduledTime":"2026-10-03T15:00:00Z","status":"RUNNING","result":{"homeTeamFinalScore":20,"guestTeamFinalScore":22}}
	]}`))
	canonical := newOrigin(t, status(http.StatusInternalServerError))

	games, err := newTestClient(south, north, canonical).ListRecentGames(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{games[0].ID, games[1].ID, games[2].ID})
	require.NotNil(t, games[0].Result)
	assert.Equal(t, 70, games[0].Result.HomeScore)
	assert.Nil(t, games[1].Result, "running games carry no result")
	assert.Equal(t, int32(0), canonical.hits.Load())
}

func TestClient_RecentGamesToleratesOneOriginDown(t *testing.T) {
	t.Parallel()

	south := newOrigin(t, status(http.StatusInternalServerError))
	north := newOrigin(t, jsonBody(`[{"id":"5","scheduledTime":"2026-10-03T15:00:00Z"}]`))
	canonical := newOrigin(t, status(http.StatusInternalServerError))

	games, err := newTestClient(south, north, canonical).ListRecentGames(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, games, 1)

	_, err = newTestClient(south, south, canonical).ListRecentGames(context.Background(), 0)
	assert.True(t, errors.Is(err, usecase.ErrInvalidInput))
}

func TestClient_StandingsByRegion(t *testing.T) {
	t.Parallel()

	south := newOrigin(t, status(http.StatusInternalServerError))
	north := newOrigin(t, jsonBody(`[
		{"team":{"id":10,"name":"North Club"},"wins":5,"losses":1,"pointsFor":400,"pointsAgainst":350},
		{"team":{"id":20,"name":"South Club"},"wins":9,"losses":0,"pointsFor":600,"pointsAgainst":400},
		{"team":{"id":30,"name":"Other"},"wins":2,"losses":4,"pointsFor":300,"pointsAgainst":330}
	]`))
	canonical := newOrigin(t, status(http.StatusInternalServerError))

	table, err := newTestClient(south, north, canonical).GetStandings(context.Background(), 2025, team.DivisionNorth)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, int64(10), table.Rows[0].TeamID)
	assert.Equal(t, 1, table.Rows[0].Position)
	assert.Equal(t, 6, table.Rows[0].Played)
	assert.Equal(t, "+50", table.Rows[0].DiffDisplay())
	assert.Equal(t, int32(0), south.hits.Load())
}

func TestClient_CircuitOpensPerOrigin(t *testing.T) {
	t.Parallel()

	south := newOrigin(t, status(http.StatusInternalServerError))
	north := newOrigin(t, jsonBody(`{"id":"1","status":"SCHEDULED"}`))
	canonical := newOrigin(t, status(http.StatusInternalServerError))
	client := NewClient(ClientConfig{
		HTTPClient:     &http.Client{},
		SouthURL:       south.server.URL,
		NorthURL:       north.server.URL,
		CanonicalURL:   canonical.server.URL,
		RatePerSecond:  1000,
		CircuitBreaker: resilience.BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1},
		Cache:          cache.NewStore(),
	})

	for _, id := range []string{"1", "2", "3", "4"} {
		_, err := client.GetGame(context.Background(), id)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), south.hits.Load(), "south breaker should open after two failures")
	assert.Equal(t, int32(4), north.hits.Load())
}

func TestClient_LiveBoxscoreRefetchesAfterTenSeconds(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 2, 1, 19, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	now := start
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advanceTo := func(offset time.Duration) {
		mu.Lock()
		now = start.Add(offset)
		mu.Unlock()
	}

	south := newOrigin(t, jsonBody(`{"home":{"teamId":10,"players":[]},"guest":{"teamId":20,"players":[]}}`))
	north := newOrigin(t, status(http.StatusInternalServerError))
	canonical := newOrigin(t, status(http.StatusInternalServerError))
	client := newTestClient(south, north, canonical)
	client.cache = cache.NewStoreWithClock(clock)

	advanceTo(10 * time.Second)
	_, err := client.GetBoxscore(context.Background(), "X")
	require.NoError(t, err)

	advanceTo(14 * time.Second)
	_, err = client.GetBoxscore(context.Background(), "X")
	require.NoError(t, err)
	assert.Equal(t, int32(1), south.hits.Load(), "second call within the live TTL is served from cache")

	advanceTo(25 * time.Second)
	_, err = client.GetBoxscore(context.Background(), "X")
	require.NoError(t, err)
	assert.Equal(t, int32(2), south.hits.Load())
}
