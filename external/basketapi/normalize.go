package basketapi

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoopscout/internal/domain/game"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/standing"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
)

// The functions below turn raw payloads into domain records. They never fail:
// absent text becomes "-" and absent counts become 0.

// NormalizeID canonicalizes ids that went through a float upstream, e.g.
// 1234.0 or "1234.0" become "1234".
func NormalizeID(v any) string {
	switch typed := v.(type) {
	case float64:
		if typed == math.Trunc(typed) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case string:
		return player.CanonicalID(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int:
		return strconv.Itoa(typed)
	default:
		return ""
	}
}

func playerIDOf(src map[string]any) string {
	for _, key := range []string{"playerId", "personId", "id"} {
		if id := NormalizeID(src[key]); id != "" && id != "0" {
			return id
		}
	}
	return ""
}

// NormalizePlayer reads player metadata. Nested seasonPlayer/person/player
// objects are merged under the top level.
func NormalizePlayer(src map[string]any) player.Player {
	merged := flatten(src, "seasonPlayer", "person", "player")

	heightRaw, _ := getFloatAny(merged, "height", "heightCm", "size")
	p := player.Player{
		ID:            playerIDOf(merged),
		TeamID:        getInt64Any(merged, "teamId", "seasonTeamId"),
		FirstName:     orMissing(getStringAny(merged, "firstName", "firstname", "givenName")),
		LastName:      orMissing(getStringAny(merged, "lastName", "lastname", "familyName")),
		ShirtNumber:   orMissing(getStringAny(merged, "shirtNumber", "jerseyNumber", "number")),
		Position:      orMissing(getStringAny(merged, "position", "positionName")),
		HeightMeters:  player.NormalizeHeight(heightRaw),
		BirthDate:     parseDate(getStringAny(merged, "birthDate", "dateOfBirth", "birthdate")),
		Nationalities: NormalizeNationalities(merged),
		PortraitURI:   getStringAny(merged, "imageUrl", "portraitUrl", "photoUrl", "image", "photo"),
	}
	if p.FirstName == player.Missing && p.LastName == player.Missing {
		if full := getStringAny(merged, "name", "fullName"); full != "" {
			first, last, found := strings.Cut(full, " ")
			p.FirstName = first
			p.LastName = player.Missing
			if found {
				p.LastName = last
			}
		}
	}
	return p
}

// NormalizeNationalities accepts a list of strings, a list of objects with a
// name, or a single nested nationality object. The first shape that yields a
// value wins.
func NormalizeNationalities(src map[string]any) []string {
	for _, key := range []string{"nationalities", "nationality", "nation", "country"} {
		raw, ok := src[key]
		if !ok || raw == nil {
			continue
		}
		if out := nationalityValues(raw); len(out) > 0 {
			return out
		}
	}
	return nil
}

func nationalityValues(raw any) []string {
	switch typed := raw.(type) {
	case string:
		if v := strings.TrimSpace(typed); v != "" {
			return []string{v}
		}
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			switch v := item.(type) {
			case string:
				if s := strings.TrimSpace(v); s != "" {
					out = append(out, s)
				}
			case map[string]any:
				if s := getStringAny(v, "name", "code", "countryName"); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case map[string]any:
		if v := getStringAny(typed, "name", "code", "countryName"); v != "" {
			return []string{v}
		}
		if nested, ok := typed["nationality"]; ok {
			return nationalityValues(nested)
		}
	}
	return nil
}

// NormalizeCounters reads counting stats under their common aliases.
func NormalizeCounters(src map[string]any) statline.Counters {
	src = flatten(src, "statistics", "stats", "totals")

	c := statline.Counters{
		GamesPlayed:         getIntAny(src, "gamesPlayed", "games", "gp"),
		Points:              getIntAny(src, "points", "pts"),
		FieldGoalsMade:      getIntAny(src, "fieldGoalsMade", "fgm"),
		FieldGoalsAttempted: getIntAny(src, "fieldGoalsAttempted", "fga"),
		ThreePointMade:      getIntAny(src, "threePointShotsMade", "threePointersMade", "3pm", "tpm"),
		ThreePointAttempted: getIntAny(src, "threePointShotsAttempted", "threePointersAttempted", "3pa", "tpa"),
		FreeThrowsMade:      getIntAny(src, "freeThrowsMade", "ftm"),
		FreeThrowsAttempted: getIntAny(src, "freeThrowsAttempted", "fta"),
		OffensiveRebounds:   getIntAny(src, "offensiveRebounds", "oreb"),
		DefensiveRebounds:   getIntAny(src, "defensiveRebounds", "dreb"),
		TotalRebounds:       getIntAny(src, "totalRebounds", "rebounds", "reb"),
		Assists:             getIntAny(src, "assists", "ast"),
		Turnovers:           getIntAny(src, "turnovers", "tov"),
		Steals:              getIntAny(src, "steals", "stl"),
		Blocks:              getIntAny(src, "blocks", "blk"),
		PersonalFouls:       getIntAny(src, "foulsCommitted", "personalFouls", "fouls", "pf"),
		SecondsPlayed:       secondsPlayed(src),
	}
	if eff, ok := getFloatAny(src, "efficiency", "eff"); ok {
		c.Efficiency = eff
	}

	// two-point counters are only used to rebuild missing field goal totals
	if c.FieldGoalsAttempted == 0 {
		twoMade := getIntAny(src, "twoPointShotsMade", "twoPointersMade", "2pm")
		twoAtt := getIntAny(src, "twoPointShotsAttempted", "twoPointersAttempted", "2pa")
		if twoAtt > 0 || twoMade > 0 {
			c.FieldGoalsMade = twoMade + c.ThreePointMade
			c.FieldGoalsAttempted = twoAtt + c.ThreePointAttempted
		}
	}

	c.ServerFieldGoalPct = percentField(src, "fieldGoalsSuccessPercent", "fgPct")
	c.ServerTwoPointPct = percentField(src, "twoPointShotSuccessPercent", "twoPointPct")
	c.ServerThreePointPct = percentField(src, "threePointShotSuccessPercent", "threePointPct")
	c.ServerFreeThrowPct = percentField(src, "freeThrowsSuccessPercent", "ftPct")

	return c.Repair()
}

// secondsPlayed handles integer seconds, decimal minutes and "MM:SS" strings.
func secondsPlayed(src map[string]any) int {
	if v, ok := getFloatAny(src, "secondsPlayed", "seconds", "playTime"); ok {
		return int(math.Round(v))
	}
	for _, key := range []string{"minutesPlayed", "minutes", "min"} {
		raw, ok := src[key]
		if !ok || raw == nil {
			continue
		}
		if s, isString := raw.(string); isString {
			if mm, ss, found := strings.Cut(strings.TrimSpace(s), ":"); found {
				m, errM := strconv.Atoi(mm)
				sec, errS := strconv.Atoi(ss)
				if errM == nil && errS == nil {
					return m*60 + sec
				}
				continue
			}
		}
		return int(math.Round(asFloat64(raw) * 60))
	}
	return 0
}

func percentField(src map[string]any, keys ...string) *float64 {
	v, ok := getFloatAny(src, keys...)
	if !ok {
		return nil
	}
	if v > 0 && v <= 1 {
		v *= 100
	}
	return &v
}

// NormalizePlayerSeasonStats reads one row of a team's player-stats listing.
func NormalizePlayerSeasonStats(src map[string]any, teamID, seasonID int64) player.SeasonStats {
	p := NormalizePlayer(src)
	if p.TeamID == 0 {
		p.TeamID = teamID
	}
	return player.SeasonStats{
		Player:   p,
		SeasonID: seasonID,
		Totals:   NormalizeCounters(src),
	}
}

// TeamName finds a display name in the shapes the upstream uses.
func TeamName(src map[string]any) string {
	if name := getStringAny(src, "name", "teamName"); name != "" {
		return name
	}
	for _, key := range []string{"seasonTeam", "team", "club"} {
		if name := getStringAny(nestedMap(src, key), "name", "teamName"); name != "" {
			return name
		}
	}
	return ""
}

func teamIDOf(src map[string]any) int64 {
	if id := getInt64Any(src, "teamId", "seasonTeamId", "id"); id != 0 {
		return id
	}
	for _, key := range []string{"seasonTeam", "team", "club"} {
		if id := getInt64Any(nestedMap(src, key), "teamId", "id"); id != 0 {
			return id
		}
	}
	return 0
}

// NormalizeTeam reads team details. fallbackName is used when the payload has
// no usable name.
func NormalizeTeam(src map[string]any, teamID int64, division team.Division, fallbackName string) team.Team {
	t := team.Team{
		ID:       teamIDOf(src),
		Name:     TeamName(src),
		Division: division,
		LogoURI:  getStringAny(src, "logoUrl", "logo", "imageUrl"),
	}
	if t.ID == 0 {
		t.ID = teamID
	}
	if t.Name == "" {
		t.Name = orMissing(fallbackName)
	}
	return t
}

// NormalizeGame reads a game record. Scores are kept only for final games.
func NormalizeGame(src map[string]any) game.Game {
	home := firstMap(src, "homeTeam", "home")
	guest := firstMap(src, "guestTeam", "awayTeam", "guest", "away")

	g := game.Game{
		ID:          NormalizeID(firstValue(src, "gameId", "id")),
		ScheduledAt: parseTime(getStringAny(src, "scheduledTime", "startTime", "gameTime", "date")),
		HomeTeamID:  teamIDOf(home),
		GuestTeamID: teamIDOf(guest),
		HomeName:    TeamName(home),
		GuestName:   TeamName(guest),
		Status:      game.ParseStatus(getStringAny(src, "status", "state", "gameStatus")),
		Period:      getIntAny(src, "period", "quarter"),
		GameClock:   getStringAny(src, "gameClock", "clock"),
	}
	if g.HomeTeamID == 0 {
		g.HomeTeamID = getInt64Any(src, "homeTeamId")
	}
	if g.GuestTeamID == 0 {
		g.GuestTeamID = getInt64Any(src, "guestTeamId", "awayTeamId")
	}

	if result := firstMap(src, "result", "score"); result != nil {
		hs, hok := getFloatAny(result, "homeTeamFinalScore", "homeScore", "home")
		gs, gok := getFloatAny(result, "guestTeamFinalScore", "guestScore", "awayScore", "guest", "away")
		if hok && gok {
			g.Result = &game.Result{HomeScore: int(hs), GuestScore: int(gs)}
		}
	}
	return g.Settle()
}

// NormalizeGames reads a listing, drops duplicates by game id and orders the
// rest by scheduled time, then id.
func NormalizeGames(items []map[string]any) []game.Game {
	seen := make(map[string]struct{}, len(items))
	out := make([]game.Game, 0, len(items))
	for _, item := range items {
		g := NormalizeGame(item)
		if g.ID == "" {
			continue
		}
		if _, dup := seen[g.ID]; dup {
			continue
		}
		seen[g.ID] = struct{}{}
		out = append(out, g)
	}
	SortGames(out)
	return out
}

func SortGames(games []game.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		if !games[i].ScheduledAt.Equal(games[j].ScheduledAt) {
			return games[i].ScheduledAt.Before(games[j].ScheduledAt)
		}
		return games[i].ID < games[j].ID
	})
}

// NormalizeBoxscore reads /games/{id}/stats. Status stays empty when the
// payload has none so game details can fill it in.
func NormalizeBoxscore(src map[string]any, gameID string) game.Boxscore {
	var status game.Status
	if raw := getStringAny(src, "status", "state", "gameStatus"); raw != "" {
		status = game.ParseStatus(raw)
	}
	box := game.Boxscore{
		GameID:    gameID,
		Status:    status,
		Period:    getIntAny(src, "period", "quarter"),
		GameClock: getStringAny(src, "gameClock", "clock"),
		Home:      normalizeTeamBox(firstMap(src, "homeTeam", "home")),
		Guest:     normalizeTeamBox(firstMap(src, "guestTeam", "awayTeam", "guest", "away")),
	}
	return box
}

func normalizeTeamBox(src map[string]any) game.TeamBox {
	box := game.TeamBox{
		TeamID: teamIDOf(src),
		Name:   TeamName(src),
		Score:  getIntAny(src, "score", "points", "finalScore"),
	}
	for _, row := range asObjects(firstValue(src, "playerStats", "players"), "items") {
		p := NormalizePlayer(row)
		if p.ID == "" {
			continue
		}
		box.Players = append(box.Players, game.PlayerLine{
			PlayerID:    p.ID,
			Name:        p.FullName(),
			ShirtNumber: p.ShirtNumber,
			Starter:     row["starter"] == true || row["isStarter"] == true,
			Totals:      NormalizeCounters(row),
		})
	}
	if box.Score == 0 {
		for _, line := range box.Players {
			box.Score += line.Totals.Points
		}
	}
	return box
}

// NormalizeStandings reads a standings listing into table rows.
func NormalizeStandings(items []map[string]any) []standing.Row {
	rows := make([]standing.Row, 0, len(items))
	for _, item := range items {
		row := standing.Row{
			Position:      getIntAny(item, "rank", "position", "place"),
			TeamID:        teamIDOf(item),
			TeamName:      orMissing(TeamName(item)),
			Played:        getIntAny(item, "gamesPlayed", "games", "played"),
			Wins:          getIntAny(item, "wins", "won"),
			Losses:        getIntAny(item, "losses", "lost"),
			PointsFor:     getIntAny(item, "pointsFor", "pointsMade", "scored"),
			PointsAgainst: getIntAny(item, "pointsAgainst", "pointsConceded", "conceded"),
		}
		if row.PointsFor == 0 && row.PointsAgainst == 0 {
			// only the difference is published
			if diff := getIntAny(item, "pointsDiff", "difference", "diff"); diff != 0 {
				row.PointsFor = diff
			}
		}
		if row.Played == 0 {
			row.Played = row.Wins + row.Losses
		}
		rows = append(rows, row)
	}
	return standing.Rank(rows)
}

func flatten(src map[string]any, nestedKeys ...string) map[string]any {
	if src == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(src))
	for _, key := range nestedKeys {
		nested, ok := src[key].(map[string]any)
		if !ok {
			continue
		}
		for k, v := range nested {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
	}
	for k, v := range src {
		if _, nested := src[k].(map[string]any); nested && contains(nestedKeys, k) {
			continue
		}
		out[k] = v
	}
	return out
}

func contains(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}

func firstMap(src map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		if m := nestedMap(src, key); m != nil {
			return m
		}
	}
	return nil
}

func firstValue(src map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := src[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func orMissing(v string) string {
	if strings.TrimSpace(v) == "" {
		return player.Missing
	}
	return strings.TrimSpace(v)
}

func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "02.01.2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
