package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/hoopscout/internal/domain/annotation"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/scouting"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
	"github.com/riskibarqy/hoopscout/internal/platform/logging"
	"github.com/riskibarqy/hoopscout/internal/render"
)

type ReportRequest struct {
	HomeTeamID  int64
	GuestTeamID int64
	// SeasonID falls back to the configured season when zero.
	SeasonID    int64
	// TipOff falls back to the current time when zero.
	TipOff      time.Time
	Scout       scouting.Side
}

// ReportArtifact is a rendered report ready to be served or written to disk.
type ReportArtifact struct {
	Filename string
	HTML     []byte
	Report   scouting.Report
}

type ReportService struct {
	teams       team.Reader
	players     player.Reader
	logos       LogoResolver
	images      ImageInliner
	annotations annotation.Store
	directory   TeamDirectory
	seasonID    int64
	now         func() time.Time
	logger      *logging.Logger
}

func NewReportService(
	teams team.Reader,
	players player.Reader,
	logos LogoResolver,
	images ImageInliner,
	annotations annotation.Store,
	directory TeamDirectory,
	seasonID int64,
	logger *logging.Logger,
) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportService{
		teams:       teams,
		players:     players,
		logos:       logos,
		images:      images,
		annotations: annotations,
		directory:   directory,
		seasonID:    seasonID,
		now:         time.Now,
		logger:      logger.Named("report"),
	}
}

// Build collects every input of a report one call after another and assembles
// it. Upstream failures become notices on the report; only invalid requests
// fail.
func (s *ReportService) Build(ctx context.Context, req ReportRequest) (scouting.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Build")
	defer span.End()

	req, err := s.normalize(req)
	if err != nil {
		return scouting.Report{}, err
	}

	var notices []string
	home := s.header(ctx, req.SeasonID, req.HomeTeamID, &notices)
	guest := s.header(ctx, req.SeasonID, req.GuestTeamID, &notices)
	scouted := guest
	if req.Scout == scouting.SideHome {
		scouted = home
	}

	roster, err := s.players.ListTeamPlayerStats(ctx, req.SeasonID, scouted.ID)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return scouting.Report{}, err
		}
		s.logger.WarnContext(ctx, "roster unavailable", "team_id", scouted.ID, "error", err)
		notices = append(notices, fmt.Sprintf("Kader von %s nicht verfügbar (%s)", scouted.Name, reason(err)))
	}

	var totals *statline.Counters
	stats, err := s.teams.GetTeamSeasonStats(ctx, req.SeasonID, scouted.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "team season stats unavailable", "team_id", scouted.ID, "error", err)
		notices = append(notices, fmt.Sprintf("Teamstatistik von %s nicht verfügbar, Durchschnitt aus Kader berechnet", scouted.Name))
	} else {
		totals = &stats.Totals
	}

	roster = s.enrich(ctx, roster, &notices)
	portraits := make(map[string]string, len(roster))
	for _, entry := range roster {
		portraits[entry.Player.ID] = s.images.Inline(ctx, entry.Player.PortraitURI)
	}

	state := s.annotations.Snapshot(ctx)
	if err := s.annotations.SetMatchup(ctx, annotation.Matchup{Home: home.Name, Guest: guest.Name}); err != nil {
		s.logger.WarnContext(ctx, "remember matchup", "error", err)
	}

	return scouting.Build(scouting.Input{
		TipOff:      req.TipOff,
		Home:        home,
		Guest:       guest,
		Scout:       req.Scout,
		Roster:      roster,
		TeamTotals:  totals,
		Portraits:   portraits,
		Annotations: state.Players,
		KeyFacts:    state.KeyFacts,
		Notices:     notices,
	}), nil
}

// Render builds the report and renders the printable document.
func (s *ReportService) Render(ctx context.Context, req ReportRequest) (ReportArtifact, error) {
	report, err := s.Build(ctx, req)
	if err != nil {
		return ReportArtifact{}, err
	}
	html, err := render.Bytes(ctx, render.Report(report))
	if err != nil {
		return ReportArtifact{}, fmt.Errorf("render report: %w", err)
	}

	req, _ = s.normalize(req)
	return ReportArtifact{
		Filename: ReportFilename(report.Meta.Home.Name, report.Meta.Guest.Name, req.TipOff),
		HTML:     html,
		Report:   report,
	}, nil
}

func (s *ReportService) normalize(req ReportRequest) (ReportRequest, error) {
	if req.HomeTeamID <= 0 || req.GuestTeamID <= 0 {
		return req, fmt.Errorf("%w: home and guest team ids must be > 0", ErrInvalidInput)
	}
	if req.HomeTeamID == req.GuestTeamID {
		return req, fmt.Errorf("%w: home and guest team must differ", ErrInvalidInput)
	}
	if req.SeasonID == 0 {
		req.SeasonID = s.seasonID
	}
	if req.SeasonID <= 0 {
		return req, fmt.Errorf("%w: season id must be > 0", ErrInvalidInput)
	}
	if req.TipOff.IsZero() {
		req.TipOff = s.now()
	}
	req.Scout = scouting.ParseSide(string(req.Scout))
	return req, nil
}

func (s *ReportService) header(ctx context.Context, seasonID, teamID int64, notices *[]string) scouting.TeamHeader {
	h := scouting.TeamHeader{ID: teamID, Name: s.fallbackName(teamID)}

	candidates := s.logos.LogoCandidates(seasonID, teamID)
	t, err := s.teams.GetTeam(ctx, seasonID, teamID)
	if err != nil {
		s.logger.WarnContext(ctx, "team details unavailable", "team_id", teamID, "error", err)
		*notices = append(*notices, fmt.Sprintf("Teamdaten für %s nicht verfügbar (%s)", h.Name, reason(err)))
	} else {
		if strings.TrimSpace(t.Name) != "" {
			h.Name = t.Name
		}
		if t.LogoURI != "" {
			candidates = append([]string{t.LogoURI}, candidates...)
		}
	}
	h.LogoURI = s.images.InlineFirst(ctx, dedupe(candidates))
	return h
}

func (s *ReportService) fallbackName(teamID int64) string {
	if s.directory != nil {
		if name := s.directory.Name(teamID); name != "" {
			return name
		}
	}
	return fmt.Sprintf("Team %d", teamID)
}

// enrich fills portrait and bio gaps from the player endpoint.
func (s *ReportService) enrich(ctx context.Context, roster []player.SeasonStats, notices *[]string) []player.SeasonStats {
	out := make([]player.SeasonStats, len(roster))
	failed := 0
	for i, entry := range roster {
		out[i] = entry
		p := entry.Player
		if p.PortraitURI != "" && !p.BirthDate.IsZero() && p.HeightMeters > 0 {
			continue
		}
		meta, err := s.players.GetPlayer(ctx, p.ID)
		if err != nil {
			s.logger.DebugContext(ctx, "player details unavailable", "player_id", p.ID, "error", err)
			failed++
			continue
		}
		out[i].Player = mergePlayer(p, meta)
	}
	if failed > 0 {
		*notices = append(*notices, fmt.Sprintf("Spielerdetails für %d Spielerinnen nicht verfügbar", failed))
	}
	return out
}

func mergePlayer(base, meta player.Player) player.Player {
	if base.PortraitURI == "" {
		base.PortraitURI = meta.PortraitURI
	}
	if base.BirthDate.IsZero() {
		base.BirthDate = meta.BirthDate
	}
	if base.HeightMeters <= 0 {
		base.HeightMeters = meta.HeightMeters
	}
	if base.Position == "" || base.Position == player.Missing {
		base.Position = meta.Position
	}
	if len(base.Nationalities) == 0 {
		base.Nationalities = meta.Nationalities
	}
	if base.ShirtNumber == "" || base.ShirtNumber == player.Missing {
		base.ShirtNumber = meta.ShirtNumber
	}
	return base
}

// ReportFilename is scouting_<home>_vs_<guest>_<yyyymmdd>.html in league time.
func ReportFilename(home, guest string, tipOff time.Time) string {
	return fmt.Sprintf("scouting_%s_vs_%s_%s.html", slug(home), slug(guest), tipOff.In(scouting.Location()).Format("20060102"))
}

var transliterate = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "Ä", "Ae", "Ö", "Oe", "Ü", "Ue", "ß", "ss")

func slug(name string) string {
	name = transliterate.Replace(strings.TrimSpace(name))
	var b strings.Builder
	underscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			underscore = false
		case !underscore && b.Len() > 0:
			b.WriteByte('_')
			underscore = true
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "team"
	}
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok || v == "" {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// reason is the short user-facing cause shown in notices.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrOriginUnavailable):
		return "Server nicht erreichbar"
	case errors.Is(err, ErrNotFound):
		return "nicht gefunden"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "Zeitüberschreitung"
	default:
		return "Fehler beim Laden"
	}
}
