package standing

import "testing"

func TestRank_AssignsPositionsWhenMissing(t *testing.T) {
	t.Parallel()

	rows := Rank([]Row{
		{TeamID: 3, Wins: 4, PointsFor: 300, PointsAgainst: 310},
		{TeamID: 1, Wins: 6, PointsFor: 400, PointsAgainst: 350},
		{TeamID: 2, Wins: 4, PointsFor: 320, PointsAgainst: 300},
	})

	want := []int64{1, 2, 3}
	for i, row := range rows {
		if row.TeamID != want[i] {
			t.Fatalf("row %d team=%d want %d", i, row.TeamID, want[i])
		}
		if row.Position != i+1 {
			t.Fatalf("row %d position=%d", i, row.Position)
		}
	}
	if rows[0].DiffDisplay() != "+50" || rows[2].DiffDisplay() != "-10" {
		t.Fatalf("unexpected diff display %q %q", rows[0].DiffDisplay(), rows[2].DiffDisplay())
	}
}

func TestRank_KeepsUpstreamPositions(t *testing.T) {
	t.Parallel()

	rows := Rank([]Row{
		{Position: 2, TeamID: 10, Wins: 9},
		{Position: 1, TeamID: 11, Wins: 8},
	})
	if rows[0].TeamID != 11 || rows[1].TeamID != 10 {
		t.Fatalf("expected upstream positions to win, got %+v", rows)
	}
}
