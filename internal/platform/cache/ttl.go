package cache

import "time"

// Class groups endpoints that share an expiry policy.
type Class string

const (
	ClassPlayerMeta  Class = "player_meta"
	ClassTeamDetails Class = "team_details"
	ClassStandings   Class = "standings"
	ClassTeamStats   Class = "team_stats"
	ClassGameLive    Class = "game_live"
	ClassRecentGames Class = "recent_games"
	ClassImage       Class = "image"
)

var classTTL = map[Class]time.Duration{
	ClassPlayerMeta:  time.Hour,
	ClassTeamDetails: 30 * time.Minute,
	ClassStandings:   30 * time.Minute,
	ClassTeamStats:   10 * time.Minute,
	ClassGameLive:    10 * time.Second,
	ClassRecentGames: 60 * time.Second,
	ClassImage:       24 * time.Hour,
}

// TTL returns the expiry for a class. Unknown classes are not cached.
func (c Class) TTL() time.Duration {
	return classTTL[c]
}
