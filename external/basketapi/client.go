package basketapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/hoopscout/internal/domain/game"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/standing"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
	"github.com/riskibarqy/hoopscout/internal/platform/cache"
	"github.com/riskibarqy/hoopscout/internal/platform/logging"
	"github.com/riskibarqy/hoopscout/internal/platform/resilience"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

const (
	defaultMetadataTimeout = 1500 * time.Millisecond
	defaultListingTimeout  = 4 * time.Second
	defaultRatePerSecond   = 10
	maxSlotSize            = 100
)

// TeamDirectory is the static team registry as seen by the client.
type TeamDirectory interface {
	DivisionResolver
	Name(teamID int64) string
}

type ClientConfig struct {
	HTTPClient      *http.Client
	SouthURL        string
	NorthURL        string
	CanonicalURL    string
	APIKey          string
	RatePerSecond   float64
	MetadataTimeout time.Duration
	ListingTimeout  time.Duration
	CircuitBreaker  resilience.BreakerConfig
	Teams           TeamDirectory
	Cache           *cache.Store
	Logger          *logging.Logger
}

// Client reads the league API across its regional origins. Every lookup goes
// through the shared cache with the TTL class of its endpoint.
type Client struct {
	router          *router
	fetch           *fetcher
	teams           TeamDirectory
	cache           *cache.Store
	logger          *logging.Logger
	canonicalURL    string
	metadataTimeout time.Duration
	listingTimeout  time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("basketapi")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	ratePerSecond := cfg.RatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = defaultRatePerSecond
	}
	metadataTimeout := cfg.MetadataTimeout
	if metadataTimeout <= 0 {
		metadataTimeout = defaultMetadataTimeout
	}
	listingTimeout := cfg.ListingTimeout
	if listingTimeout <= 0 {
		listingTimeout = defaultListingTimeout
	}
	store := cfg.Cache
	if store == nil {
		store = cache.NewStore()
	}

	breakerCfg := resilience.NormalizeBreakerConfig(cfg.CircuitBreaker)
	f := &fetcher{
		httpClient:     httpClient,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		circuitEnabled: breakerCfg.Enabled,
		logger:         logger,
	}

	origins := make(map[OriginID]*origin, 3)
	for id, base := range map[OriginID]string{
		OriginSouth:     cfg.SouthURL,
		OriginNorth:     cfg.NorthURL,
		OriginCanonical: cfg.CanonicalURL,
	} {
		base = strings.TrimRight(strings.TrimSpace(base), "/")
		if base == "" {
			continue
		}
		origins[id] = &origin{
			id:      id,
			baseURL: base,
			limiter: rate.NewLimiter(rate.Limit(ratePerSecond), max(1, int(ratePerSecond))),
			breaker: resilience.NewCircuitBreaker("origin-"+string(id), breakerCfg),
		}
	}

	return &Client{
		router:          &router{origins: origins, fetch: f},
		fetch:           f,
		teams:           cfg.Teams,
		cache:           store,
		logger:          logger,
		canonicalURL:    strings.TrimRight(strings.TrimSpace(cfg.CanonicalURL), "/"),
		metadataTimeout: metadataTimeout,
		listingTimeout:  listingTimeout,
	}
}

func (c *Client) division(teamID int64) team.Division {
	if c.teams == nil {
		return team.DivisionUnknown
	}
	return c.teams.Division(teamID)
}

func (c *Client) registryName(teamID int64) string {
	if c.teams == nil {
		return ""
	}
	return c.teams.Name(teamID)
}

func (c *Client) GetTeam(ctx context.Context, seasonID, teamID int64) (team.Team, error) {
	if seasonID <= 0 || teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: season id and team id must be > 0", usecase.ErrInvalidInput)
	}

	path := fmt.Sprintf("/teams/%d/%d", teamID, seasonID)
	return cache.Load(ctx, c.cache, cache.Key(path), cache.ClassTeamDetails, func(ctx context.Context) (team.Team, error) {
		div := c.division(teamID)
		raw, _, err := c.router.first(ctx, teamDetailOrder(div), path, nil, c.metadataTimeout)
		if err != nil {
			return team.Team{}, err
		}
		obj, err := decodeObject(raw)
		if err != nil {
			return team.Team{}, crerr.Wrapf(err, "decode %s", path)
		}
		t := NormalizeTeam(obj, teamID, div, c.registryName(teamID))
		if t.LogoURI == "" {
			t.LogoURI = c.LogoURL(seasonID, teamID)
		}
		return t, nil
	})
}

func (c *Client) GetTeamSeasonStats(ctx context.Context, seasonID, teamID int64) (team.SeasonStats, error) {
	if seasonID <= 0 || teamID <= 0 {
		return team.SeasonStats{}, fmt.Errorf("%w: season id and team id must be > 0", usecase.ErrInvalidInput)
	}

	path := fmt.Sprintf("/teams/%d/%d/statistics/season", teamID, seasonID)
	return cache.Load(ctx, c.cache, cache.Key(path), cache.ClassTeamStats, func(ctx context.Context) (team.SeasonStats, error) {
		raw, _, err := c.router.first(ctx, regionalOrder(c.division(teamID)), path, nil, c.listingTimeout)
		if err != nil {
			return team.SeasonStats{}, err
		}
		obj, err := decodeObject(raw)
		if err != nil {
			return team.SeasonStats{}, crerr.Wrapf(err, "decode %s", path)
		}
		return team.SeasonStats{TeamID: teamID, SeasonID: seasonID, Totals: NormalizeCounters(obj)}, nil
	})
}

func (c *Client) ListTeamPlayerStats(ctx context.Context, seasonID, teamID int64) ([]player.SeasonStats, error) {
	if seasonID <= 0 || teamID <= 0 {
		return nil, fmt.Errorf("%w: season id and team id must be > 0", usecase.ErrInvalidInput)
	}

	path := fmt.Sprintf("/teams/%d/%d/player-stats", teamID, seasonID)
	return cache.Load(ctx, c.cache, cache.Key(path), cache.ClassTeamStats, func(ctx context.Context) ([]player.SeasonStats, error) {
		raw, _, err := c.router.first(ctx, regionalOrder(c.division(teamID)), path, nil, c.listingTimeout)
		if err != nil {
			return nil, err
		}
		items, err := decodeList(raw, "playerStats", "players", "items")
		if err != nil {
			return nil, crerr.Wrapf(err, "decode %s", path)
		}
		out := make([]player.SeasonStats, 0, len(items))
		for _, item := range items {
			row := NormalizePlayerSeasonStats(item, teamID, seasonID)
			if row.Player.ID == "" {
				continue
			}
			out = append(out, row)
		}
		return out, nil
	})
}

func (c *Client) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = player.CanonicalID(playerID)
	if _, err := strconv.ParseInt(playerID, 10, 64); err != nil {
		return player.Player{}, fmt.Errorf("%w: player id %q", usecase.ErrInvalidInput, playerID)
	}

	path := "/season-players/" + playerID
	return cache.Load(ctx, c.cache, cache.Key(path), cache.ClassPlayerMeta, func(ctx context.Context) (player.Player, error) {
		raw, _, err := c.router.first(ctx, regionalOrder(team.DivisionUnknown), path, nil, c.metadataTimeout)
		if err != nil {
			return player.Player{}, err
		}
		obj, err := decodeObject(raw)
		if err != nil {
			return player.Player{}, crerr.Wrapf(err, "decode %s", path)
		}
		p := NormalizePlayer(obj)
		if p.ID == "" {
			p.ID = playerID
		}
		return p, nil
	})
}

func (c *Client) GetGame(ctx context.Context, gameID string) (game.Game, error) {
	gameID = player.CanonicalID(gameID)
	if gameID == "" {
		return game.Game{}, fmt.Errorf("%w: game id is required", usecase.ErrInvalidInput)
	}

	path := "/games/" + url.PathEscape(gameID)
	return cache.Load(ctx, c.cache, cache.Key(path), cache.ClassGameLive, func(ctx context.Context) (game.Game, error) {
		raw, _, err := c.router.first(ctx, regionalOrder(team.DivisionUnknown), path, nil, c.metadataTimeout)
		if err != nil {
			return game.Game{}, err
		}
		obj, err := decodeObject(raw)
		if err != nil {
			return game.Game{}, crerr.Wrapf(err, "decode %s", path)
		}
		g := NormalizeGame(obj)
		if g.ID == "" {
			g.ID = gameID
		}
		return g, nil
	})
}

func (c *Client) GetBoxscore(ctx context.Context, gameID string) (game.Boxscore, error) {
	gameID = player.CanonicalID(gameID)
	if gameID == "" {
		return game.Boxscore{}, fmt.Errorf("%w: game id is required", usecase.ErrInvalidInput)
	}

	path := "/games/" + url.PathEscape(gameID) + "/stats"
	return cache.Load(ctx, c.cache, cache.Key(path), cache.ClassGameLive, func(ctx context.Context) (game.Boxscore, error) {
		raw, _, err := c.router.first(ctx, regionalOrder(team.DivisionUnknown), path, nil, c.listingTimeout)
		if err != nil {
			return game.Boxscore{}, err
		}
		obj, err := decodeObject(raw)
		if err != nil {
			return game.Boxscore{}, crerr.Wrapf(err, "decode %s", path)
		}
		return NormalizeBoxscore(obj, gameID), nil
	})
}

// ListRecentGames asks both regional origins and merges their listings.
func (c *Client) ListRecentGames(ctx context.Context, slotSize int) ([]game.Game, error) {
	if slotSize <= 0 || slotSize > maxSlotSize {
		return nil, fmt.Errorf("%w: slotSize must be between 1 and %d", usecase.ErrInvalidInput, maxSlotSize)
	}

	query := url.Values{"slotSize": []string{strconv.Itoa(slotSize)}}
	key := cache.Key("/games/recent", map[string]string{"slotSize": strconv.Itoa(slotSize)})
	return cache.Load(ctx, c.cache, key, cache.ClassRecentGames, func(ctx context.Context) ([]game.Game, error) {
		answers, err := c.router.all(ctx, []OriginID{OriginSouth, OriginNorth}, "/games/recent", query, c.listingTimeout)
		if err != nil {
			return nil, err
		}
		items := make([]map[string]any, 0, slotSize*2)
		for _, a := range answers {
			list, decodeErr := decodeList(a.Body, "games", "items")
			if decodeErr != nil {
				c.logger.WarnContext(ctx, "skip undecodable recent games", "origin", a.Origin, "error", decodeErr)
				continue
			}
			items = append(items, list...)
		}
		return NormalizeGames(items), nil
	})
}

// GetStandings loads the table of one division from its regional origin.
func (c *Client) GetStandings(ctx context.Context, seasonID int64, division team.Division) (standing.Table, error) {
	if seasonID <= 0 {
		return standing.Table{}, fmt.Errorf("%w: season id must be > 0", usecase.ErrInvalidInput)
	}
	if !division.Valid() {
		return standing.Table{}, fmt.Errorf("%w: region must be North or South", usecase.ErrInvalidInput)
	}

	season := strconv.FormatInt(seasonID, 10)
	query := url.Values{"seasonId": []string{season}}
	key := cache.Key("/standings", map[string]string{"seasonId": season, "region": string(division)})
	return cache.Load(ctx, c.cache, key, cache.ClassStandings, func(ctx context.Context) (standing.Table, error) {
		raw, _, err := c.router.first(ctx, regionalOrder(division), "/standings", query, c.listingTimeout)
		if err != nil {
			return standing.Table{}, err
		}
		items, err := decodeList(raw, "standings", "table", "items")
		if err != nil {
			return standing.Table{}, crerr.Wrap(err, "decode /standings")
		}
		return standing.Table{
			SeasonID: seasonID,
			Division: division,
			Rows:     c.divisionRows(NormalizeStandings(items), division),
		}, nil
	})
}

// divisionRows drops teams the registry places in the other division and
// renumbers the rest.
func (c *Client) divisionRows(rows []standing.Row, division team.Division) []standing.Row {
	kept := make([]standing.Row, 0, len(rows))
	for _, row := range rows {
		if d := c.division(row.TeamID); d.Valid() && d != division {
			continue
		}
		kept = append(kept, row)
	}
	if len(kept) == len(rows) {
		return rows
	}
	for i := range kept {
		kept[i].Position = 0
	}
	return standing.Rank(kept)
}

// LogoURL is the canonical logo location of a team.
func (c *Client) LogoURL(seasonID, teamID int64) string {
	return c.LogoCandidates(seasonID, teamID)[0]
}

// LogoCandidates lists logo URLs to try: canonical origin first, then the
// team's regional origins.
func (c *Client) LogoCandidates(seasonID, teamID int64) []string {
	path := fmt.Sprintf("/images/teams/logo/%d/%d", seasonID, teamID)
	out := make([]string, 0, 3)
	for _, id := range teamDetailOrder(c.division(teamID)) {
		if o, ok := c.router.origins[id]; ok {
			out = append(out, o.baseURL+path)
		}
	}
	if len(out) == 0 {
		out = append(out, c.canonicalURL+path)
	}
	return out
}

// FetchAsset downloads an image with the API credentials. It is not cached;
// the image pipeline caches the encoded result.
func (c *Client) FetchAsset(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, error) {
	return c.fetch.getURL(ctx, "asset", nil, rawURL, timeout)
}
