package config

import "slices"

// DependencyCycle reports the first registryDependencies cycle among declared
// items, or nil. Cycles are legal; builds only surface them as warnings.
func (r *Registry) DependencyCycle() []string {
	if r == nil {
		return nil
	}
	return detectCycle(r.Items)
}

// detectCycle returns the item names participating in a registry dependency
// cycle, or nil. Dependencies on items outside the registry are ignored.
func detectCycle(items []Item) []string {
	declared := make(map[string]bool, len(items))
	for _, item := range items {
		declared[item.Name] = true
	}

	graph := make(map[string][]string, len(items))
	for _, item := range items {
		deps := make([]string, 0, len(item.RegistryDependencies))
		for _, dep := range item.RegistryDependencies {
			if declared[dep] {
				deps = append(deps, dep)
			}
		}
		graph[item.Name] = deps
	}

	visiting := make(map[string]bool, len(items))
	visited := make(map[string]bool, len(items))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		for _, dep := range graph[node] {
			if visited[dep] {
				continue
			}
			if visiting[dep] {
				idx := slices.Index(stack, dep)
				cycle = append([]string{}, stack[idx:]...)
				cycle = append(cycle, dep)
				return true
			}
			if dfs(dep) {
				return true
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	names := make([]string, 0, len(graph))
	for name := range graph {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if visited[name] {
			continue
		}
		if dfs(name) {
			break
		}
	}

	return cycle
}
