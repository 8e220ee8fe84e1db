package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// ErrNotFound is returned when no archived report matches.
var ErrNotFound = errors.New("report not found")

// minPrefix is the shortest report id prefix Read accepts.
const minPrefix = 8

// Entry is the listing view of an archived report.
type Entry struct {
	Seq         int64  `json:"seq"`
	RowID       string `json:"row_id"`
	ReportID    string `json:"report_id"`
	FightID     int64  `json:"fight_id"`
	FightName   string `json:"fight_name,omitempty"`
	Job         string `json:"job"`
	Player      int64  `json:"player"`
	Duration    int64  `json:"duration"`
	Suggestions int    `json:"suggestions"`
}

// ListFilter narrows List. Zero values match everything.
type ListFilter struct {
	Job   string
	Limit int
}

// Write archives a sealed report and returns its entry.
// Writing a report whose id is already archived is a no-op that returns the
// existing entry.
func (s *Store) Write(ctx context.Context, rep *report.Report) (Entry, error) {
	if rep == nil {
		return Entry{}, errors.New("write report: nil report")
	}
	if rep.ID == "" {
		return Entry{}, errors.New("write report: report is not sealed")
	}

	body, err := report.MarshalCanonical(rep)
	if err != nil {
		return Entry{}, fmt.Errorf("write report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports
		(id, report_id, fight_id, fight_name, job, player, duration, suggestions, body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(report_id) DO NOTHING
	`,
		s.ids.Generate(),
		rep.ID,
		rep.Fight.ID,
		rep.Fight.Name,
		rep.Fight.Job,
		rep.Fight.PlayerID,
		rep.Fight.Duration,
		len(rep.Suggestions),
		string(body),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("write report: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+entryColumns+`
		FROM reports
		WHERE report_id = ?
	`, rep.ID)
	entry, err := scanEntry(row)
	if err != nil {
		return Entry{}, fmt.Errorf("write report: %w", err)
	}
	return entry, nil
}

// Read returns the archived report whose report id or row id equals id.
// A unique report id prefix of at least eight characters also matches.
func (s *Store) Read(ctx context.Context, id string) (*report.Report, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `
		SELECT body FROM reports
		WHERE report_id = ? OR id = ?
	`, id, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		body, err = s.readPrefix(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	var rep report.Report
	if err := json.Unmarshal([]byte(body), &rep); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", id, err)
	}
	return &rep, nil
}

func (s *Store) readPrefix(ctx context.Context, prefix string) (string, error) {
	if len(prefix) < minPrefix {
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT body FROM reports
		WHERE substr(report_id, 1, ?) = ?
		ORDER BY seq ASC
		LIMIT 2
	`, len(prefix), prefix)
	if err != nil {
		return "", fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var bodies []string
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return "", fmt.Errorf("scan report: %w", err)
		}
		bodies = append(bodies, body)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate reports: %w", err)
	}

	switch len(bodies) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	case 1:
		return bodies[0], nil
	default:
		return "", fmt.Errorf("report id prefix %q is ambiguous", prefix)
	}
}

// List returns archived entries in insertion order.
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) List(ctx context.Context, f ListFilter) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM reports`
	var args []any
	if f.Job != "" {
		query += ` WHERE job = ?`
		args = append(args, f.Job)
	}
	query += ` ORDER BY seq ASC, id COLLATE BINARY ASC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return entries, nil
}

const entryColumns = `seq, id, report_id, fight_id, fight_name, job, player, duration, suggestions`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var e Entry
	err := sc.Scan(
		&e.Seq,
		&e.RowID,
		&e.ReportID,
		&e.FightID,
		&e.FightName,
		&e.Job,
		&e.Player,
		&e.Duration,
		&e.Suggestions,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("scan report entry: %w", err)
	}
	return e, nil
}
