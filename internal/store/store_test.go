package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NamelessFaceless/xivanalysis/internal/report"
	"github.com/NamelessFaceless/xivanalysis/internal/testutil"
)

// createTestStore opens a store in a temp dir with deterministic row ids.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithIDGenerator(testutil.NewSequentialIDGenerator("row")))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// sealedReport builds a sealed report for fight id and job.
func sealedReport(t *testing.T, fightID int64, job string) *report.Report {
	t.Helper()
	rep := &report.Report{
		Fight: report.FightSummary{
			ID:       fightID,
			Name:     "Striking Dummy",
			Job:      job,
			PlayerID: 1,
			Duration: 60000,
		},
		Modules: []string{"combatants", "suggestions"},
		Suggestions: []report.Suggestion{{
			ID:       "dnc.esprit.overcap",
			Severity: report.SeverityMinor,
			Value:    1,
			Why:      "1 Saber Dance may have been missed.",
		}},
	}
	require.NoError(t, report.Seal(rep))
	return rep
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file was not created")
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "Open() iteration %d", i)
		s.Close()
	}

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var name string
	err = s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='index' AND name='idx_reports_job'",
	).Scan(&name)
	assert.NoError(t, err, "migration index missing after reopen")
}

func TestOpen_Pragmas(t *testing.T) {
	s := createTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("synchronous", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestClose_Nil(t *testing.T) {
	var s Store
	assert.NoError(t, s.Close())
}

func TestUUIDv7Generator(t *testing.T) {
	id := UUIDv7Generator{}.Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestWrite_ReturnsEntry(t *testing.T) {
	s := createTestStore(t)
	rep := sealedReport(t, 7, "DNC")

	e, err := s.Write(context.Background(), rep)
	require.NoError(t, err)

	assert.Equal(t, Entry{
		Seq:         1,
		RowID:       "row-0001",
		ReportID:    rep.ID,
		FightID:     7,
		FightName:   "Striking Dummy",
		Job:         "DNC",
		Player:      1,
		Duration:    60000,
		Suggestions: 1,
	}, e)
}

func TestWrite_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	rep := sealedReport(t, 7, "DNC")

	first, err := s.Write(ctx, rep)
	require.NoError(t, err)
	second, err := s.Write(ctx, rep)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	entries, err := s.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWrite_RejectsUnsealed(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Write(context.Background(), &report.Report{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not sealed")

	_, err = s.Write(context.Background(), nil)
	assert.Error(t, err)
}

func TestRead_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	rep := sealedReport(t, 7, "DNC")

	e, err := s.Write(ctx, rep)
	require.NoError(t, err)

	byReport, err := s.Read(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep, byReport)

	byRow, err := s.Read(ctx, e.RowID)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, byRow.ID)

	// stored reports still hash to their own id
	id, err := report.ComputeID(byReport)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, id)
}

func TestRead_Prefix(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	rep := sealedReport(t, 7, "DNC")
	_, err := s.Write(ctx, rep)
	require.NoError(t, err)

	got, err := s.Read(ctx, rep.ID[:12])
	require.NoError(t, err)
	assert.Equal(t, rep.ID, got.ID)

	// too short to be treated as a prefix
	_, err = s.Read(ctx, rep.ID[:4])
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRead_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Read(context.Background(), "0123456789abcdef")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_OrderAndFilter(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for i, job := range []string{"DNC", "MNK", "DNC"} {
		_, err := s.Write(ctx, sealedReport(t, int64(i+1), job))
		require.NoError(t, err)
	}

	all, err := s.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, e := range all {
		assert.Equal(t, int64(i+1), e.Seq)
		assert.Equal(t, int64(i+1), e.FightID)
	}

	dnc, err := s.List(ctx, ListFilter{Job: "DNC"})
	require.NoError(t, err)
	require.Len(t, dnc, 2)
	assert.Equal(t, int64(1), dnc[0].FightID)
	assert.Equal(t, int64(3), dnc[1].FightID)

	limited, err := s.List(ctx, ListFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestList_EmptyNotNil(t *testing.T) {
	s := createTestStore(t)

	entries, err := s.List(context.Background(), ListFilter{Job: "BLU"})
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
