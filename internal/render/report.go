package render

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/riskibarqy/hoopscout/internal/domain/annotation"
	"github.com/riskibarqy/hoopscout/internal/domain/scouting"
)

// Report is the printable scouting document. Every image is expected to be a
// data URI already, so the output is self-contained.
func Report(r scouting.Report) templ.Component {
	return Document(Page{
		Title: fmt.Sprintf("Scouting %s vs %s %s", r.Meta.Home.Name, r.Meta.Guest.Name, r.Meta.Date),
		CSS:   reportCSS,
		Body:  reportBody(r),
	})
}

func reportBody(r scouting.Report) templ.Component {
	return component(func(ctx context.Context, o *out) {
		o.child(ctx, Header(r.Meta))
		o.child(ctx, Notices(r.Notices))

		o.raw("<main><section class=\"leaders\"")
		o.attr("data-team", fmt.Sprint(r.Scouted.ID))
		o.raw(">")
		for _, board := range r.Leaderboards {
			o.child(ctx, StatBox(board))
		}
		o.raw("</section><section class=\"cards\">")
		for _, card := range r.Cards {
			o.child(ctx, PlayerCard(card))
		}
		o.raw("</section><section class=\"team-average\"><h2>Team Average ")
		o.text(r.Scouted.Name)
		o.raw("</h2>")
		o.child(ctx, StatGrid(r.TeamAverage))
		o.raw("</section><h2 class=\"facts-title\">Key Facts</h2><section class=\"facts\">")
		for _, table := range annotation.KeyFactTables {
			o.child(ctx, KeyFactTable(table, r.KeyFacts.Rows(table)))
		}
		o.raw("</section></main>")
	})
}
