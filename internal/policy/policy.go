package policy

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

//go:embed tables/*.cue
var embedded embed.FS

// Core is the table key used by jobs without their own ordering.
const Core = "core"

// Tables is the compiled policy set.
type Tables struct {
	cooldowns map[string][]CooldownGroup

	// Sources names where each cooldown table came from, for diagnostics.
	Sources map[string]string
}

// CooldownOrder returns the cooldown ordering for key, or false if the
// tables have none. The slice is shared; callers must not modify it.
func (t *Tables) CooldownOrder(key string) ([]CooldownGroup, bool) {
	groups, ok := t.cooldowns[strings.ToLower(key)]
	return groups, ok
}

// CooldownKeys returns the table keys in sorted order.
func (t *Tables) CooldownKeys() []string {
	keys := make([]string, 0, len(t.cooldowns))
	for k := range t.cooldowns {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Digest identifies the compiled tables. Two table sets with the same
// orderings have the same digest regardless of where they were loaded from.
func (t *Tables) Digest() string {
	h := sha256.New()
	for _, key := range t.CooldownKeys() {
		fmt.Fprintf(h, "%s\x00", key)
		for _, g := range t.cooldowns[key] {
			fmt.Fprintf(h, "%s|%t|%v\x00", g.Name, g.Merge, g.Actions)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Default compiles the embedded tables.
func Default() (*Tables, error) {
	ctx := cuecontext.New()
	t := &Tables{
		cooldowns: make(map[string][]CooldownGroup),
		Sources:   make(map[string]string),
	}

	entries, err := embedded.ReadDir("tables")
	if err != nil {
		return nil, fmt.Errorf("read embedded tables: %w", err)
	}
	for _, entry := range entries {
		name := "tables/" + entry.Name()
		src, err := embedded.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		v := ctx.CompileBytes(src, cue.Filename(name))
		if err := t.merge(v, "embedded:"+name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Load compiles the embedded tables, then replaces every table defined by
// the CUE package in dir. An empty dir returns the defaults.
func Load(dir string) (*Tables, error) {
	t, err := Default()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return t, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("policy directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("policy directory: not a directory: %s", dir)
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.cue"))
	if err != nil {
		return nil, fmt.Errorf("policy directory: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("policy directory: no CUE files found in %s", dir)
	}

	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("policy directory: no CUE instances loaded")
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("loading CUE files: %w", formatCUEError(inst.Err))
	}

	v := cuecontext.New().BuildInstance(inst)
	if err := t.merge(v, dir); err != nil {
		return nil, err
	}
	return t, nil
}

// merge compiles every cooldowns.<key> in v and stores it, replacing any
// earlier table with the same key.
func (t *Tables) merge(v cue.Value, source string) error {
	if err := v.Err(); err != nil {
		return formatCUEError(err)
	}

	cooldowns := v.LookupPath(cue.ParsePath("cooldowns"))
	if !cooldowns.Exists() {
		return nil
	}
	iter, err := cooldowns.Fields()
	if err != nil {
		return formatCUEError(err)
	}
	for iter.Next() {
		key := strings.ToLower(iter.Label())
		groups, err := compileCooldowns(iter.Value())
		if err != nil {
			return fmt.Errorf("cooldowns.%s: %w", key, err)
		}
		t.cooldowns[key] = groups
		t.Sources[key] = source
	}
	return nil
}
