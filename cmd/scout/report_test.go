package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoopscout/internal/usecase"
)

func TestParseFixture(t *testing.T) {
	t.Parallel()

	req, err := parseFixture(" 1101:1201@2026-03-07T19:30:00+01:00 ")
	require.NoError(t, err)
	assert.Equal(t, int64(1101), req.HomeTeamID)
	assert.Equal(t, int64(1201), req.GuestTeamID)
	assert.True(t, req.TipOff.Equal(time.Date(2026, 3, 7, 18, 30, 0, 0, time.UTC)))

	req, err = parseFixture("1102:1203")
	require.NoError(t, err)
	assert.True(t, req.TipOff.IsZero())
}

func TestParseFixture_Rejects(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "1101", "1101-1201", "abc:1201", "1101:0", "1101:1201@tonight"} {
		_, err := parseFixture(raw)
		assert.Error(t, err, raw)
	}
}

func TestWriteArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink := writeArtifact(dir)
	err := sink(context.Background(), usecase.ReportArtifact{Filename: "scouting_A_vs_B_20260307.html", HTML: []byte("<html></html>")})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "scouting_A_vs_B_20260307.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}
