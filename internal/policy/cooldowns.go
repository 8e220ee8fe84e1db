package policy

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/NamelessFaceless/xivanalysis/internal/data"
)

// CooldownGroup is one entry of a cooldown ordering.
type CooldownGroup struct {
	Name    string
	Merge   bool
	Actions []int64
}

// compileCooldowns parses one ordering, e.g. the value at cooldowns.mnk.
func compileCooldowns(v cue.Value) ([]CooldownGroup, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var groups []CooldownGroup
	for iter.Next() {
		g, err := compileGroup(iter.Value())
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// compileGroup accepts a bare action name or a {name, merge, actions}
// struct.
func compileGroup(v cue.Value) (CooldownGroup, error) {
	if name, err := v.String(); err == nil {
		a, err := resolveAction(name, v)
		if err != nil {
			return CooldownGroup{}, err
		}
		return CooldownGroup{Name: a.Name, Actions: []int64{a.ID}}, nil
	}

	var g CooldownGroup

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return g, &CompileError{Field: "name", Message: "cooldown group name is required", Pos: v.Pos()}
	}
	name, err := nameVal.String()
	if err != nil {
		return g, formatCUEError(err)
	}
	g.Name = name

	if mergeVal := v.LookupPath(cue.ParsePath("merge")); mergeVal.Exists() {
		merge, err := mergeVal.Bool()
		if err != nil {
			return g, formatCUEError(err)
		}
		g.Merge = merge
	}

	actionsVal := v.LookupPath(cue.ParsePath("actions"))
	if !actionsVal.Exists() {
		return g, &CompileError{Field: "actions", Message: fmt.Sprintf("group %q has no actions", name), Pos: v.Pos()}
	}
	iter, err := actionsVal.List()
	if err != nil {
		return g, formatCUEError(err)
	}
	for iter.Next() {
		actionName, err := iter.Value().String()
		if err != nil {
			return g, formatCUEError(err)
		}
		a, err := resolveAction(actionName, iter.Value())
		if err != nil {
			return g, err
		}
		g.Actions = append(g.Actions, a.ID)
	}
	if len(g.Actions) == 0 {
		return g, &CompileError{Field: "actions", Message: fmt.Sprintf("group %q has no actions", name), Pos: actionsVal.Pos()}
	}

	return g, nil
}

func resolveAction(name string, v cue.Value) (data.Action, error) {
	a, ok := data.ActionByName(name)
	if !ok {
		return data.Action{}, &CompileError{
			Field:   "actions",
			Message: fmt.Sprintf("unknown action %q", name),
			Pos:     v.Pos(),
		}
	}
	return a, nil
}
