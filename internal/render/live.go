package render

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"

	"github.com/riskibarqy/hoopscout/internal/domain/game"
	"github.com/riskibarqy/hoopscout/internal/domain/scouting"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
)

// LiveRefreshSeconds matches the live cache class so each reload costs at most
// one upstream call.
const LiveRefreshSeconds = 15

// Live is the compact scoreboard for one game.
func Live(box game.Boxscore, notices []string) templ.Component {
	return Document(Page{
		Title:   fmt.Sprintf("%s - %s", box.Home.Name, box.Guest.Name),
		CSS:     liveCSS,
		Refresh: LiveRefreshSeconds,
		Body:    liveBody(box, notices),
	})
}

func liveBody(box game.Boxscore, notices []string) templ.Component {
	return component(func(ctx context.Context, o *out) {
		home, guest := box.Home.Score, box.Guest.Score
		if box.Result != nil {
			home, guest = box.Result.HomeScore, box.Result.GuestScore
		}

		o.raw("<section class=\"score\"")
		o.attr("data-game", box.GameID)
		o.raw("><span class=\"team\">")
		o.text(box.Home.Name)
		o.raw("</span><span class=\"pts\">")
		o.text(strconv.Itoa(home))
		o.raw("</span><div class=\"state\"><div class=\"status\">")
		o.text(string(box.Status))
		o.raw("</div>")
		if box.Period > 0 {
			o.raw("<div class=\"period\">Q")
			o.text(strconv.Itoa(box.Period))
			o.raw("</div>")
		}
		if box.GameClock != "" {
			o.raw("<div class=\"clock\">")
			o.text(box.GameClock)
			o.raw("</div>")
		}
		if !box.GameTime.IsZero() {
			o.raw("<div class=\"tipoff\">")
			o.text(box.GameTime.In(scouting.Location()).Format("02.01.2006 15:04"))
			o.raw("</div>")
		}
		o.raw("</div><span class=\"pts\">")
		o.text(strconv.Itoa(guest))
		o.raw("</span><span class=\"team\">")
		o.text(box.Guest.Name)
		o.raw("</span></section>")
		o.child(ctx, Notices(notices))

		o.raw("<section class=\"box\">")
		o.child(ctx, boxTable(box.Home))
		o.child(ctx, boxTable(box.Guest))
		o.raw("</section>")
	})
}

func boxTable(side game.TeamBox) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.raw("<table><tr><th class=\"name\">")
		o.text(side.Name)
		o.raw("</th><th>Min</th><th>PTS</th><th>REB</th><th>AS</th><th>PF</th><th>EFF</th></tr>")
		for _, p := range side.Players {
			if p.Starter {
				o.raw("<tr class=\"starter\">")
			} else {
				o.raw("<tr>")
			}
			o.raw("<td class=\"name\">")
			o.text(fmt.Sprintf("#%s %s", p.ShirtNumber, p.Name))
			o.raw("</td>")
			for _, v := range []string{
				statline.Minutes(p.Totals.SecondsPlayed),
				strconv.Itoa(p.Totals.Points),
				strconv.Itoa(p.Totals.TotalRebounds),
				strconv.Itoa(p.Totals.Assists),
				strconv.Itoa(p.Totals.PersonalFouls),
				statline.OneDecimal(p.Totals.Efficiency),
			} {
				o.raw("<td>")
				o.text(v)
				o.raw("</td>")
			}
			o.raw("</tr>")
		}
		o.raw("</table>")
	})
}

// LiveUnavailable keeps reloading while the boxscore cannot be fetched, so
// the scoreboard appears as soon as an origin answers again.
func LiveUnavailable(gameID, notice string) templ.Component {
	return Document(Page{
		Title:   "Spiel " + gameID,
		CSS:     liveCSS,
		Refresh: LiveRefreshSeconds,
		Body:    Notices([]string{notice}),
	})
}
