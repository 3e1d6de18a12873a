package render

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/riskibarqy/hoopscout/internal/domain/scouting"
	"github.com/riskibarqy/hoopscout/internal/domain/standing"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
)

// OverlayRefreshSeconds is how often broadcast sources reload themselves.
const OverlayRefreshSeconds = 30

func overlay(title string, body templ.Component) templ.Component {
	return Document(Page{
		Title:   title,
		CSS:     overlayCSS,
		Refresh: OverlayRefreshSeconds,
		Body:    body,
	})
}

type LineupSlot struct {
	PlayerID string
	Name     string
	Number   string
}

type StartingFive struct {
	TeamName string
	Coach    string
	LogoURI  string
	Players  []LineupSlot
}

func StartingFiveOverlay(v StartingFive) templ.Component {
	return overlay(v.TeamName+" Starting Five", component(func(ctx context.Context, o *out) {
		o.raw("<div class=\"overlay lineup\"><h1>")
		o.child(ctx, Image(v.LogoURI, v.TeamName, "logo"))
		o.text(v.TeamName)
		o.raw("</h1><div class=\"five\">")
		for _, p := range v.Players {
			o.raw("<div class=\"slot\"")
			o.attr("data-player", p.PlayerID)
			o.raw("><span class=\"nr\">")
			o.text(p.Number)
			o.raw("</span><span class=\"pname\">")
			o.text(p.Name)
			o.raw("</span></div>")
		}
		o.raw("</div>")
		if v.Coach != "" {
			o.raw("<div class=\"coach\">HC ")
			o.text(v.Coach)
			o.raw("</div>")
		}
		o.raw("</div>")
	}))
}

// StandingsOverlay prints a regional table with the league's German headings.
func StandingsOverlay(title string, table standing.Table, notices []string) templ.Component {
	return overlay(title, component(func(ctx context.Context, o *out) {
		o.raw("<div class=\"overlay\"><h1>")
		o.text(title)
		o.raw("</h1>")
		o.child(ctx, Notices(notices))
		o.raw("<table class=\"standings\"><tr><th>Platz</th><th class=\"team\">Team</th><th>Sp</th><th>S</th><th>N</th><th>Diff</th></tr>")
		for _, row := range table.Rows {
			o.raw("<tr>")
			cell(o, "", strconv.Itoa(row.Position))
			cell(o, "team", row.TeamName)
			cell(o, "", strconv.Itoa(row.Played))
			cell(o, "", strconv.Itoa(row.Wins))
			cell(o, "", strconv.Itoa(row.Losses))
			cell(o, "", row.DiffDisplay())
			o.raw("</tr>")
		}
		o.raw("</table></div>")
	}))
}

func cell(o *out, class, v string) {
	o.raw("<td")
	if class != "" {
		o.attr("class", class)
	}
	o.raw(">")
	o.text(v)
	o.raw("</td>")
}

type ComparisonSide struct {
	Name    string
	LogoURI string
	Line    statline.Line
}

type comparisonRow struct {
	label string
	value func(statline.Line) string
}

var comparisonRows = []comparisonRow{
	{"PPG", func(l statline.Line) string { return statline.OneDecimal(l.PointsPerGame) }},
	{"FG%", func(l statline.Line) string { return percent(l.FieldGoal.Percentage) }},
	{"3P%", func(l statline.Line) string { return percent(l.ThreePoint.Percentage) }},
	{"FT%", func(l statline.Line) string { return percent(l.FreeThrow.Percentage) }},
	{"REB", func(l statline.Line) string { return statline.OneDecimal(l.TotalReboundsPerGame) }},
	{"AS", func(l statline.Line) string { return statline.OneDecimal(l.AssistsPerGame) }},
	{"TO", func(l statline.Line) string { return statline.OneDecimal(l.TurnoversPerGame) }},
	{"ST", func(l statline.Line) string { return statline.OneDecimal(l.StealsPerGame) }},
	{"BS", func(l statline.Line) string { return statline.OneDecimal(l.BlocksPerGame) }},
}

func ComparisonOverlay(home, guest ComparisonSide, notices []string) templ.Component {
	return overlay(home.Name+" vs "+guest.Name, component(func(ctx context.Context, o *out) {
		o.raw("<div class=\"overlay\">")
		o.child(ctx, Notices(notices))
		o.raw("<table class=\"compare\"><tr><th>")
		o.child(ctx, Image(home.LogoURI, home.Name, "logo"))
		o.text(home.Name)
		o.raw("</th><th></th><th>")
		o.child(ctx, Image(guest.LogoURI, guest.Name, "logo"))
		o.text(guest.Name)
		o.raw("</th></tr>")
		for _, row := range comparisonRows {
			o.raw("<tr>")
			cell(o, "", row.value(home.Line))
			cell(o, "label", row.label)
			cell(o, "", row.value(guest.Line))
			o.raw("</tr>")
		}
		o.raw("</table></div>")
	}))
}

// PlayerOfTheGameOverlay shows the pick, or a waiting card before any stats exist.
func PlayerOfTheGameOverlay(pick scouting.Pick, found bool, notices []string) templ.Component {
	return overlay("Player of the Game", component(func(ctx context.Context, o *out) {
		o.raw("<div class=\"overlay potg\"><h1>Player of the Game</h1>")
		o.child(ctx, Notices(notices))
		if !found {
			o.raw("<p>-</p></div>")
			return
		}
		t := pick.Line.Totals
		o.raw("<div class=\"big\">#")
		o.text(pick.Line.ShirtNumber)
		o.raw(" ")
		o.text(pick.Line.Name)
		o.raw("</div><div class=\"team\">")
		o.text(pick.TeamName)
		o.raw("</div><dl>")
		for _, kv := range [][2]string{
			{"PTS", strconv.Itoa(t.Points)},
			{"REB", strconv.Itoa(t.TotalRebounds)},
			{"AS", strconv.Itoa(t.Assists)},
			{"EFF", statline.OneDecimal(t.Efficiency)},
		} {
			o.raw("<dt>")
			o.text(kv[0])
			o.raw("</dt><dd>")
			o.text(kv[1])
			o.raw("</dd>")
		}
		o.raw("</dl></div>")
	}))
}
