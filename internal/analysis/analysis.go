// Package analysis runs one recording through the engine for a job.
package analysis

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/NamelessFaceless/xivanalysis/internal/engine"
	"github.com/NamelessFaceless/xivanalysis/internal/jobs"
	"github.com/NamelessFaceless/xivanalysis/internal/policy"
	"github.com/NamelessFaceless/xivanalysis/internal/recording"
)

// Options configures Analyze. Zero values pick defaults.
type Options struct {
	// Job overrides the recording's job when set.
	Job string

	// Tables defaults to the embedded policy tables.
	Tables *policy.Tables

	Logger    *slog.Logger
	MaxEvents int
}

// Analyze builds the job's registry, initialises an engine and runs the
// recording through it. An overridden job is also the report's job. Each call owns its engine, so concurrent calls are
// independent.
func Analyze(rec *recording.Recording, opts Options) (*engine.Result, error) {
	tables := opts.Tables
	if tables == nil {
		var err error
		if tables, err = policy.Default(); err != nil {
			return nil, fmt.Errorf("load policy: %w", err)
		}
	}

	fight := rec.Fight
	if opts.Job != "" {
		fight.Job = strings.ToUpper(opts.Job)
	}

	registry, err := jobs.Registry(fight.Job, tables)
	if err != nil {
		return nil, err
	}

	engineOpts := []engine.Option{}
	if opts.Logger != nil {
		engineOpts = append(engineOpts, engine.WithLogger(opts.Logger))
	}
	if opts.MaxEvents != 0 {
		engineOpts = append(engineOpts, engine.WithMaxEvents(opts.MaxEvents))
	}

	eng, err := engine.New(fight, registry, engineOpts...)
	if err != nil {
		return nil, err
	}
	return eng.Run(rec.Events)
}
