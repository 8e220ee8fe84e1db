// Package core provides the modules every job analysis runs.
//
// Normalisers:
//   - precastAction fabricates the cast of an action fired before the pull
//   - precastStatus fabricates applications of statuses already active at
//     the pull; it runs after precastAction
//
// Shared state:
//   - combatants tracks which statuses each actor holds
//   - suggestions collects feedback for the report
//
// Output:
//   - cooldowns tabulates cooldown usage in a policy-defined order
package core

// Module handles.
const (
	HandlePrecastAction = "precastAction"
	HandlePrecastStatus = "precastStatus"
	HandleCombatants    = "combatants"
	HandleSuggestions   = "suggestions"
	HandleCooldowns     = "cooldowns"
)
