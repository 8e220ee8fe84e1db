package module

import (
	"fmt"
	"sort"
)

// Resolve orders the registered descriptors so every module comes after all
// of its dependencies.
//
// The algorithm:
//  1. Reject dependencies on unregistered handles
//  2. Find strongly connected components with Tarjan's algorithm; any
//     component with more than one member, or a self-dependency, is a cycle
//  3. Depth-first post-order walk over modules in registration order,
//     visiting dependencies in declared order
//
// Step 3 makes the order deterministic: for the same registry the same order
// comes out every time, and modules with no ordering constraint between them
// keep their registration order.
func (r *Registry) Resolve() ([]Descriptor, error) {
	graph := make(dependencyGraph, len(r.order))
	for _, handle := range r.order {
		d := r.byHandle[handle]
		for _, dep := range d.Dependencies {
			if _, ok := r.byHandle[dep]; !ok {
				return nil, &ConfigError{
					Code:       ErrCodeUnknownDependency,
					Message:    fmt.Sprintf("depends on unregistered module %q", dep),
					Handle:     handle,
					Dependency: dep,
				}
			}
		}
		graph[handle] = d.Dependencies
	}

	if cycles := findCycles(r.order, graph); len(cycles) > 0 {
		first := cycles[0]
		msg := "modules depend on each other"
		if len(cycles) > 1 {
			msg = fmt.Sprintf("%s (%d cycles found)", msg, len(cycles))
		}
		return nil, &ConfigError{
			Code:    ErrCodeDependencyCycle,
			Message: msg,
			Handle:  first[0],
			Path:    first,
		}
	}

	resolved := make([]Descriptor, 0, len(r.order))
	visited := make(map[string]bool, len(r.order))

	var visit func(string)
	visit = func(handle string) {
		if visited[handle] {
			return
		}
		visited[handle] = true
		for _, dep := range graph[handle] {
			visit(dep)
		}
		resolved = append(resolved, r.byHandle[handle])
	}
	for _, handle := range r.order {
		visit(handle)
	}

	return resolved, nil
}

// dependencyGraph maps handle → handles it depends on.
type dependencyGraph map[string][]string

// findCycles returns one path per cycle, each path starting and ending at
// its earliest-registered member: ["a", "b", "a"].
func findCycles(order []string, graph dependencyGraph) [][]string {
	rank := make(map[string]int, len(order))
	for i, handle := range order {
		rank[handle] = i
	}

	var cycles [][]string
	for _, scc := range tarjanSCC(order, graph) {
		scc := scc
		if len(scc) == 1 && !hasSelfLoop(scc[0], graph) {
			continue
		}
		sort.Slice(scc, func(i, j int) bool { return rank[scc[i]] < rank[scc[j]] })
		cycles = append(cycles, cyclePath(scc, graph))
	}

	sort.SliceStable(cycles, func(i, j int) bool {
		return rank[cycles[i][0]] < rank[cycles[j][0]]
	})
	return cycles
}

func hasSelfLoop(node string, graph dependencyGraph) bool {
	for _, neighbor := range graph[node] {
		if neighbor == node {
			return true
		}
	}
	return false
}

// tarjanSCC finds strongly connected components, visiting roots in the
// given order so results are deterministic.
func tarjanSCC(order []string, graph dependencyGraph) [][]string {
	var (
		index   = 0
		stack   []string
		indices = make(map[string]int)
		lowlink = make(map[string]int)
		onStack = make(map[string]bool)
		sccs    [][]string
	)

	var strongConnect func(string)
	strongConnect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		// v is a root: pop its component
		if lowlink[v] == indices[v] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, node := range order {
		if _, visited := indices[node]; !visited {
			strongConnect(node)
		}
	}

	return sccs
}

// cyclePath walks dependency edges inside the component from its first
// member until it returns to it.
func cyclePath(scc []string, graph dependencyGraph) []string {
	start := scc[0]
	if len(scc) == 1 {
		return []string{start, start}
	}

	members := make(map[string]bool, len(scc))
	for _, node := range scc {
		members[node] = true
	}

	path := []string{start}
	visited := map[string]bool{start: true}
	current := start
	for {
		next := ""
		for _, neighbor := range graph[current] {
			if neighbor == start && len(path) > 1 {
				return append(path, start)
			}
			if members[neighbor] && !visited[neighbor] {
				next = neighbor
				break
			}
		}
		if next == "" {
			// Dead end inside the component; close the loop explicitly.
			return append(path, start)
		}
		visited[next] = true
		path = append(path, next)
		current = next
	}
}
