package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NamelessFaceless/xivanalysis/internal/report"
	"github.com/NamelessFaceless/xivanalysis/internal/store"
)

// archivedOptions analyses the DNC and MNK recordings into a fresh archive.
func archivedOptions(t *testing.T, format string) *RootOptions {
	t.Helper()
	opts := testRootOptions(format)
	opts.DB = filepath.Join(t.TempDir(), "reports.db")

	_, err := runAnalyzeCommand(t, opts, dncRecording, mnkRecording)
	require.NoError(t, err)
	return opts
}

func TestListCommand_Text(t *testing.T) {
	opts := archivedOptions(t, "text")

	buf := &bytes.Buffer{}
	cmd := NewListCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "DNC")
	assert.Contains(t, out, mnkReportID[:12])
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("DNC")), bytes.Index(buf.Bytes(), []byte("MNK")))
}

func TestListCommand_JSONFilter(t *testing.T) {
	opts := archivedOptions(t, "json")

	buf := &bytes.Buffer{}
	cmd := NewListCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--job", "MNK"})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string        `json:"status"`
		Data   []store.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, mnkReportID, resp.Data[0].ReportID)
	assert.Equal(t, int64(9), resp.Data[0].FightID)
	assert.Equal(t, int64(30000), resp.Data[0].Duration)
}

func TestListCommand_EmptyArchive(t *testing.T) {
	opts := testRootOptions("text")
	opts.DB = filepath.Join(t.TempDir(), "reports.db")

	buf := &bytes.Buffer{}
	cmd := NewListCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No reports archived.")
}

func TestListCommand_RequiresDB(t *testing.T) {
	cmd := NewListCommand(testRootOptions("text"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--db")
}

func TestShowCommand_Prefix(t *testing.T) {
	opts := archivedOptions(t, "json")

	buf := &bytes.Buffer{}
	cmd := NewShowCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{mnkReportID[:10]})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string        `json:"status"`
		Data   report.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, mnkReportID, resp.Data.ID)
	assert.Equal(t, "MNK", resp.Data.Fight.Job)

	// The archived report still hashes to its id.
	id, err := report.ComputeID(&resp.Data)
	require.NoError(t, err)
	assert.Equal(t, mnkReportID, id)
}

func TestShowCommand_Text(t *testing.T) {
	opts := archivedOptions(t, "text")

	buf := &bytes.Buffer{}
	cmd := NewShowCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{mnkReportID})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Striking Dummy #9: MNK")
	assert.Contains(t, buf.String(), "Fists")
}

func TestShowCommand_NotFound(t *testing.T) {
	opts := archivedOptions(t, "json")

	buf := &bytes.Buffer{}
	cmd := NewShowCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"ffffffffffff"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "NOT_FOUND")
}

func TestAnalyzeCommand_ArchiveIsIdempotent(t *testing.T) {
	opts := archivedOptions(t, "json")

	_, err := runAnalyzeCommand(t, opts, mnkRecording)
	require.NoError(t, err)

	st, err := store.Open(opts.DB)
	require.NoError(t, err)
	defer st.Close()

	entries, err := st.List(context.Background(), store.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
