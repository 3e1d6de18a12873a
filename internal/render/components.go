package render

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/riskibarqy/hoopscout/internal/domain/annotation"
	"github.com/riskibarqy/hoopscout/internal/domain/scouting"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
)

// out collects the first write error so components read top to bottom.
type out struct {
	w   io.Writer
	err error
}

func (o *out) raw(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

func (o *out) text(s string) {
	o.raw(templ.EscapeString(s))
}

func (o *out) attr(name, value string) {
	o.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (o *out) child(ctx context.Context, c templ.Component) {
	if o.err != nil || c == nil {
		return
	}
	o.err = c.Render(ctx, o.w)
}

func component(fn func(ctx context.Context, o *out)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := &out{w: w}
		fn(ctx, o)
		return o.err
	})
}

// Page is the document shell every view shares.
type Page struct {
	Title   string
	CSS     string
	// Refresh asks the browser to reload after this many seconds; 0 disables it.
	Refresh int
	Body    templ.Component
}

func Document(p Page) templ.Component {
	return component(func(ctx context.Context, o *out) {
		o.raw("<!DOCTYPE html>\n<html lang=\"de\"><head><meta charset=\"utf-8\">")
		o.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		if p.Refresh > 0 {
			o.raw("<meta http-equiv=\"refresh\"")
			o.attr("content", strconv.Itoa(p.Refresh))
			o.raw(">")
		}
		o.raw("<title>")
		o.text(p.Title)
		o.raw("</title><style>")
		o.raw(p.CSS)
		o.raw("</style></head><body>")
		o.child(ctx, p.Body)
		o.raw("</body></html>\n")
	})
}

// Image renders an img tag for an already resolved (usually data:) URI.
func Image(src, alt, class string) templ.Component {
	return component(func(_ context.Context, o *out) {
		if src == "" {
			return
		}
		o.raw("<img")
		o.attr("class", class)
		o.attr("src", src)
		o.attr("alt", alt)
		o.raw(">")
	})
}

// Notices lists non-fatal problems, e.g. an origin that could not be reached.
func Notices(messages []string) templ.Component {
	return component(func(_ context.Context, o *out) {
		if len(messages) == 0 {
			return
		}
		o.raw("<div class=\"notice\" role=\"status\">")
		for _, m := range messages {
			o.raw("<p>")
			o.text(m)
			o.raw("</p>")
		}
		o.raw("</div>")
	})
}

// Header is the report strip with date, time and both teams.
func Header(meta scouting.Meta) templ.Component {
	return component(func(ctx context.Context, o *out) {
		o.raw("<header class=\"strip\">")
		headerTeam(ctx, o, meta.Home)
		o.raw("<div class=\"when\"><span class=\"date\">")
		o.text(meta.Date)
		o.raw("</span><span class=\"time\">")
		o.text(meta.Time)
		o.raw("</span></div>")
		headerTeam(ctx, o, meta.Guest)
		o.raw("</header>")
	})
}

func headerTeam(ctx context.Context, o *out, t scouting.TeamHeader) {
	o.raw("<div class=\"team\">")
	o.child(ctx, Image(t.LogoURI, t.Name, "logo"))
	o.raw("<span class=\"team-name\">")
	o.text(t.Name)
	o.raw("</span></div>")
}

// StatBox is one leaderboard.
func StatBox(board scouting.Leaderboard) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.raw("<section class=\"stat-box\"><h3>")
		o.text(board.Category.Title())
		o.raw("</h3><ol>")
		for _, e := range board.Entries {
			o.raw("<li><span class=\"num\">#")
			o.text(e.ShirtNumber)
			o.raw("</span> <span class=\"name\">")
			o.text(e.Name)
			o.raw("</span> <span class=\"value\">")
			o.text(statline.OneDecimal(e.Primary))
			if board.Category.Percent() {
				o.raw("%")
			}
			o.raw("</span></li>")
		}
		if len(board.Entries) == 0 {
			o.raw("<li class=\"empty\">-</li>")
		}
		o.raw("</ol></section>")
	})
}

// StatGrid is the per-player or per-team table of averages.
func StatGrid(l statline.Line) templ.Component {
	return component(func(_ context.Context, o *out) {
		heads := []string{"Min", "PPG", "2P M/A", "2P%", "3P M/A", "3P%", "FT M/A", "FT%", "DR", "OR", "TOT", "AS", "TO", "ST", "PF"}
		cells := []string{
			l.MinutesPerGame(),
			statline.OneDecimal(l.PointsPerGame),
			madeAttempted(l.TwoPoint),
			percent(l.TwoPoint.Percentage),
			madeAttempted(l.ThreePoint),
			percent(l.ThreePoint.Percentage),
			madeAttempted(l.FreeThrow),
			percent(l.FreeThrow.Percentage),
			statline.OneDecimal(l.DefensiveReboundsPerGame),
			statline.OneDecimal(l.OffensiveReboundsPerGame),
			statline.OneDecimal(l.TotalReboundsPerGame),
			statline.OneDecimal(l.AssistsPerGame),
			statline.OneDecimal(l.TurnoversPerGame),
			statline.OneDecimal(l.StealsPerGame),
			statline.OneDecimal(l.FoulsPerGame),
		}
		o.raw("<table class=\"grid\"><tr>")
		for _, h := range heads {
			o.raw("<th>")
			o.text(h)
			o.raw("</th>")
		}
		o.raw("</tr><tr>")
		for _, c := range cells {
			o.raw("<td>")
			o.text(c)
			o.raw("</td>")
		}
		o.raw("</tr></table>")
	})
}

func madeAttempted(s statline.ShotLine) string {
	return statline.OneDecimal(s.MadePerGame) + "/" + statline.OneDecimal(s.AttPerGame)
}

func percent(v float64) string {
	return statline.OneDecimal(v) + "%"
}

// NoteRow is one of the four annotation lines under a card.
func NoteRow(note, emphasis string) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.raw("<tr class=\"note-row\"><td class=\"note\">")
		o.text(note)
		o.raw("</td><td class=\"emphasis\">")
		o.text(emphasis)
		o.raw("</td></tr>")
	})
}

// PlayerCard is one scouted player sheet.
func PlayerCard(card scouting.Card) templ.Component {
	return component(func(ctx context.Context, o *out) {
		p := card.Player
		o.raw("<article class=\"card\"")
		o.attr("id", "player-"+p.ID)
		o.raw("><div class=\"card-head\"")
		o.attr("style", "background-color:"+card.Annotation.HeaderColor())
		o.raw("><span class=\"num\">#")
		o.text(p.ShirtNumber)
		o.raw("</span> <span class=\"name\">")
		o.text(p.FullName())
		o.raw("</span></div><div class=\"card-body\">")
		o.child(ctx, Image(card.PortraitURI, p.FullName(), "portrait"))
		o.raw("<dl class=\"bio\"><dt>Größe</dt><dd>")
		o.text(p.HeightDisplay())
		o.raw("</dd><dt>Position</dt><dd>")
		o.text(orDash(p.Position))
		o.raw("</dd><dt>Alter</dt><dd>")
		if card.Age >= 0 {
			o.text(strconv.Itoa(card.Age))
		} else {
			o.text("-")
		}
		o.raw("</dd><dt>Nation</dt><dd>")
		o.text(p.Nationality())
		o.raw("</dd></dl>")
		o.child(ctx, StatGrid(card.Line))
		o.raw("</div><table class=\"notes\">")
		for i := 0; i < annotation.Lines; i++ {
			o.child(ctx, NoteRow(card.Annotation.Notes[i], card.Annotation.Emphasis[i]))
		}
		o.raw("</table></article>")
	})
}

// KeyFactTable renders one of the free-form tables closing the report.
func KeyFactTable(table annotation.KeyFactTable, rows []annotation.KeyFact) templ.Component {
	return component(func(_ context.Context, o *out) {
		o.raw("<section class=\"key-facts\"><h3>")
		o.text(table.Title())
		o.raw("</h3><table>")
		for _, row := range rows {
			o.raw("<tr><th>")
			o.text(row.Title)
			o.raw("</th><td>")
			o.text(row.Detail)
			o.raw("</td></tr>")
		}
		if len(rows) == 0 {
			o.raw("<tr><th></th><td></td></tr>")
		}
		o.raw("</table></section>")
	})
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
