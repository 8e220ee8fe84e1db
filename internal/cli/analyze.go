package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/NamelessFaceless/xivanalysis/internal/analysis"
	"github.com/NamelessFaceless/xivanalysis/internal/cache"
	"github.com/NamelessFaceless/xivanalysis/internal/policy"
	"github.com/NamelessFaceless/xivanalysis/internal/recording"
	"github.com/NamelessFaceless/xivanalysis/internal/report"
	"github.com/NamelessFaceless/xivanalysis/internal/store"
)

// AnalyzeOptions holds flags for the analyze command.
type AnalyzeOptions struct {
	*RootOptions
	Job       string
	Redis     string
	PolicyDir string
	Jobs      int // concurrent analyses
}

// AnalyzeResult is the outcome for one recording.
type AnalyzeResult struct {
	Path   string         `json:"path"`
	Cached bool           `json:"cached"`
	Report *report.Report `json:"report"`
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "analyze <recording>...",
		Short: "Analyse recordings and print their reports",
		Long: `Analyse one or more recordings (JSON or YAML).

Each recording is analysed by its own engine; several recordings run
concurrently. Reports are cached in Redis when --redis is set and
archived in SQLite when --db is set.

Exit codes:
  0 - Every recording was analysed
  1 - An analysis failed (event limit, unreadable recording)
  2 - Command or configuration error

Examples:
  xivanalysis analyze fight.json
  xivanalysis analyze a.json b.yaml --db reports.db
  xivanalysis analyze fight.json --job MNK --policy-dir ./policies --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Job, "job", "", "analyse as this job instead of the recording's")
	cmd.Flags().StringVar(&opts.Redis, "redis", "", "Redis address for the report cache (env XIVA_REDIS_ADDR)")
	cmd.Flags().StringVar(&opts.PolicyDir, "policy-dir", "", "directory of CUE policy tables (env XIVA_POLICY_DIR)")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 4, "recordings analysed concurrently")

	return cmd
}

func runAnalyze(ctx context.Context, opts *AnalyzeOptions, paths []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !cmd.Flags().Changed("redis") {
		opts.Redis = opts.Config.RedisAddr
	}
	if !cmd.Flags().Changed("policy-dir") {
		opts.PolicyDir = opts.Config.PolicyDir
	}

	tables, err := policy.Load(opts.PolicyDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load policy", err)
	}

	var rc *cache.Cache
	if opts.Redis != "" {
		c, client, err := cache.Dial(ctx, opts.Redis, opts.Config.CacheTTL)
		if err != nil {
			return WrapExitError(ExitCommandError, "report cache", err)
		}
		defer client.Close()
		rc = c
	}

	var st *store.Store
	if opts.DB != "" {
		st, err = store.Open(opts.DB)
		if err != nil {
			return WrapExitError(ExitCommandError, "report archive", err)
		}
		defer st.Close()
	}

	results := make([]AnalyzeResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Jobs, 1))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := analyzeOne(gctx, opts, path, tables, rc)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		f := opts.formatter(cmd)
		f.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(GetExitCode(err), "analysis failed", err)
	}

	// Archive sequentially so archive order follows argument order.
	if st != nil {
		for _, r := range results {
			entry, err := st.Write(ctx, r.Report)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to archive report", err)
			}
			opts.Logger.Debug("report archived", "path", r.Path, "row", entry.RowID, "seq", entry.Seq)
		}
	}

	if opts.Format == "json" {
		return opts.formatter(cmd).Success(results)
	}
	w := cmd.OutOrStdout()
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderReport(w, r.Report)
		if r.Cached {
			fmt.Fprintln(w, mutedStyle.Render("(cached)"))
		}
	}
	return nil
}

// analyzeOne analyses one recording, consulting the cache first.
func analyzeOne(ctx context.Context, opts *AnalyzeOptions, path string, tables *policy.Tables, rc *cache.Cache) (AnalyzeResult, error) {
	rec, err := recording.Load(path)
	if err != nil {
		return AnalyzeResult{}, WrapExitError(ExitCommandError, "failed to load recording", err)
	}

	job := strings.ToUpper(opts.Job)
	if job == "" {
		job = rec.Fight.Job
	}
	fingerprint := cache.Fingerprint(rec.Raw, job, tables.Digest())

	if rc != nil {
		rep, err := rc.Get(ctx, fingerprint)
		if err != nil {
			// A broken cache never blocks analysis.
			opts.Logger.Warn("cache read failed", "path", path, "error", err)
		} else if rep != nil {
			opts.Logger.Debug("cache hit", "path", path, "report", rep.ID)
			return AnalyzeResult{Path: path, Cached: true, Report: rep}, nil
		}
	}

	start := time.Now()
	res, err := analysis.Analyze(rec, analysis.Options{
		Job:       job,
		Tables:    tables,
		Logger:    opts.Logger.With("path", path),
		MaxEvents: opts.Config.MaxEvents,
	})
	if err != nil {
		return AnalyzeResult{}, err
	}
	opts.Logger.Debug("analysed", "path", path, "took", time.Since(start))

	if rc != nil {
		if err := rc.Set(ctx, fingerprint, res.Report); err != nil {
			opts.Logger.Warn("cache write failed", "path", path, "error", err)
		}
	}
	return AnalyzeResult{Path: path, Report: res.Report}, nil
}
