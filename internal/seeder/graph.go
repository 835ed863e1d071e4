package seeder

import "fmt"

// DependencyGraph orders stages so that every stage follows the stages it depends on.
type DependencyGraph struct {
	deps  map[string][]string
	names []string
	order []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]string),
	}
}

func (g *DependencyGraph) AddStage(name string, dependsOn []string) {
	if _, ok := g.deps[name]; !ok {
		g.names = append(g.names, name)
	}
	g.deps[name] = dependsOn
}

// BuildInsertionOrder returns a topological order, visiting stages in the
// order they were added. Self-references count as cycles.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving stage: %s", name)
		}
		if visited[name] {
			return nil
		}

		temp[name] = true
		for _, dep := range g.deps[name] {
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) GetOrder() []string {
	return g.order
}
