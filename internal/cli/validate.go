package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NamelessFaceless/xivanalysis/internal/jobs"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
	"github.com/NamelessFaceless/xivanalysis/internal/policy"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Job       string
	PolicyDir string
}

// JobValidation is the resolved module set of one job.
type JobValidation struct {
	Job     string         `json:"job"`
	Modules []ModuleStatus `json:"modules"`
}

// ModuleStatus is one module in resolved order.
type ModuleStatus struct {
	Handle       string   `json:"handle"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// ValidateResult lists every validated job.
type ValidateResult struct {
	Jobs           []JobValidation `json:"jobs"`
	CooldownTables []string        `json:"cooldown_tables"`
	PolicyDigest   string          `json:"policy_digest"`
}

// String renders the text form.
func (r ValidateResult) String() string {
	var b strings.Builder
	for i, j := range r.Jobs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "✓ %s: %d modules\n", j.Job, len(j.Modules))
		for n, m := range j.Modules {
			fmt.Fprintf(&b, "  %d. %s", n+1, m.Handle)
			if len(m.Dependencies) > 0 {
				fmt.Fprintf(&b, " (after %s)", strings.Join(m.Dependencies, ", "))
			}
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "\ncooldown tables: %s", strings.Join(r.CooldownTables, ", "))
	return b.String()
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Resolve the module set of a job without analysing anything",
		Long: `Build and resolve the module registry for a job (or every supported
job) and compile the policy tables. Reports duplicate handles, unknown
dependencies and dependency cycles.

Exit codes:
  0 - Every module set resolved
  2 - A configuration error was found

Examples:
  xivanalysis validate
  xivanalysis validate --job DNC
  xivanalysis validate --policy-dir ./policies --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Job, "job", "", "job to validate (default: all supported jobs)")
	cmd.Flags().StringVar(&opts.PolicyDir, "policy-dir", "", "directory of CUE policy tables (env XIVA_POLICY_DIR)")

	return cmd
}

func runValidate(opts *ValidateOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	if !cmd.Flags().Changed("policy-dir") {
		opts.PolicyDir = opts.Config.PolicyDir
	}

	tables, err := policy.Load(opts.PolicyDir)
	if err != nil {
		f.Error("POLICY", err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid policy", err)
	}

	keys := jobs.Supported()
	if opts.Job != "" {
		keys = []string{opts.Job}
	}

	result := ValidateResult{
		CooldownTables: tables.CooldownKeys(),
		PolicyDigest:   tables.Digest(),
	}
	for _, key := range keys {
		jv, err := validateJob(key, tables)
		if err != nil {
			f.Error(errorCode(err), fmt.Sprintf("%s: %v", key, err), configDetails(err))
			return WrapExitError(ExitCommandError, "validation failed", err)
		}
		result.Jobs = append(result.Jobs, jv)
	}

	return f.Success(result)
}

func validateJob(key string, tables *policy.Tables) (JobValidation, error) {
	registry, err := jobs.Registry(key, tables)
	if err != nil {
		return JobValidation{}, err
	}
	order, err := registry.Resolve()
	if err != nil {
		return JobValidation{}, err
	}

	jv := JobValidation{Job: strings.ToUpper(key)}
	for _, d := range order {
		jv.Modules = append(jv.Modules, ModuleStatus{Handle: d.Handle, Dependencies: d.Dependencies})
	}
	return jv, nil
}

// configDetails exposes a ConfigError's structured fields.
func configDetails(err error) any {
	var cfgErr *module.ConfigError
	if !errors.As(err, &cfgErr) {
		return nil
	}
	return map[string]any{
		"handle":     cfgErr.Handle,
		"dependency": cfgErr.Dependency,
		"path":       cfgErr.Path,
	}
}
