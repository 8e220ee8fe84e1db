// Package jobs assembles the module registry for a job: the core modules,
// the job's own modules, then the job's overrides of core descriptors.
package jobs

import (
	"fmt"
	"slices"

	"github.com/NamelessFaceless/xivanalysis/internal/data"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
	"github.com/NamelessFaceless/xivanalysis/internal/modules/core"
	"github.com/NamelessFaceless/xivanalysis/internal/modules/dnc"
	"github.com/NamelessFaceless/xivanalysis/internal/modules/mnk"
	"github.com/NamelessFaceless/xivanalysis/internal/policy"
)

// Job describes how to analyse one job.
type Job struct {
	data.Job

	// Modules returns the job's own descriptors.
	Modules func(tables *policy.Tables) ([]module.Descriptor, error)

	// Overrides returns replacements for core descriptors.
	Overrides func(tables *policy.Tables) ([]module.Descriptor, error)
}

var supported = map[string]Job{
	data.Dancer.Key: {
		Job: data.Dancer,
		Modules: func(*policy.Tables) ([]module.Descriptor, error) {
			return []module.Descriptor{dnc.EspritDescriptor()}, nil
		},
		Overrides: func(tables *policy.Tables) ([]module.Descriptor, error) {
			return tableOverride(tables, data.Dancer.Key)
		},
	},
	data.Monk.Key: {
		Job: data.Monk,
		Overrides: func(tables *policy.Tables) ([]module.Descriptor, error) {
			d, err := mnk.CooldownsOverride(tables)
			if err != nil {
				return nil, err
			}
			return []module.Descriptor{d}, nil
		},
	},
}

// tableOverride rebinds cooldowns to the job's ordering when the tables
// carry one.
func tableOverride(tables *policy.Tables, key string) ([]module.Descriptor, error) {
	order, ok := tables.CooldownOrder(key)
	if !ok {
		return nil, nil
	}
	return []module.Descriptor{core.CooldownsDescriptor(order)}, nil
}

// Lookup returns the job for key, case-insensitively.
func Lookup(key string) (Job, bool) {
	j, ok := data.JobByKey(key)
	if !ok {
		return Job{}, false
	}
	job, ok := supported[j.Key]
	return job, ok
}

// Supported returns the supported job keys, sorted.
func Supported() []string {
	keys := make([]string, 0, len(supported))
	for k := range supported {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Core returns the descriptors every analysis registers, in registration
// order.
func Core(tables *policy.Tables) ([]module.Descriptor, error) {
	order, ok := tables.CooldownOrder(policy.Core)
	if !ok {
		return nil, fmt.Errorf("policy tables have no %q cooldown ordering", policy.Core)
	}
	return []module.Descriptor{
		core.PrecastActionDescriptor(),
		core.PrecastStatusDescriptor(),
		core.CombatantsDescriptor(),
		core.SuggestionsDescriptor(),
		core.CooldownsDescriptor(order),
	}, nil
}

// Registry builds the registry for key. Unknown jobs are an error.
func Registry(key string, tables *policy.Tables) (*module.Registry, error) {
	job, ok := Lookup(key)
	if !ok {
		return nil, fmt.Errorf("unsupported job %q (supported: %v)", key, Supported())
	}

	r := module.NewRegistry()

	descriptors, err := Core(tables)
	if err != nil {
		return nil, err
	}
	if job.Modules != nil {
		own, err := job.Modules(tables)
		if err != nil {
			return nil, fmt.Errorf("%s modules: %w", job.Name, err)
		}
		descriptors = append(descriptors, own...)
	}
	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}

	if job.Overrides != nil {
		overrides, err := job.Overrides(tables)
		if err != nil {
			return nil, fmt.Errorf("%s overrides: %w", job.Name, err)
		}
		for _, d := range overrides {
			if err := r.Override(d); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}
