package sqldialect

import (
	"regexp"
	"sort"
	"strings"
)

var callNamePattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

// FunctionCandidate is a function call discovered in a parsed span. Name is
// derived from the node's canonical rendering under the primary dialect, so
// it is stable even though the input was masked SQL.
type FunctionCandidate struct {
	Depth int
	Name  string
	Node  Node
}

// CollectFunctions walks root depth-first and returns every function call
// with its nesting depth and canonical rendered name.
func CollectFunctions(root Node, primary Profile) []FunctionCandidate {
	var candidates []FunctionCandidate

	walk(root, 0, func(n Node, depth int) {
		call, ok := n.(*Call)
		if !ok {
			return
		}

		rendered, err := primary.Render(call)
		if err != nil {
			return
		}

		match := callNamePattern.FindStringSubmatch(rendered)
		if match == nil {
			return
		}

		candidates = append(candidates, FunctionCandidate{
			Depth: depth,
			Name:  strings.ToUpper(match[1]),
			Node:  call,
		})
	})

	return candidates
}

// FunctionDiffers reports whether node renders differently across the given
// dialects. A rendering failure counts as a difference: inability to render
// is evidence of non-portability, not an error to propagate.
func FunctionDiffers(node Node, dialects []string) bool {
	renderings := make(map[string]struct{}, len(dialects))

	for _, dialect := range dialects {
		p, err := Get(dialect)
		if err != nil {
			return true
		}

		rendered, err := p.Render(node)
		if err != nil {
			return true
		}

		renderings[rendered] = struct{}{}
	}

	return len(renderings) > 1
}

// CatalogDifferences returns the sorted set of surface function names whose
// implementation identity is not uniform across the given dialects: either
// the implementation differs or the function is absent from at least one
// catalog.
func CatalogDifferences(dialects []string) ([]string, error) {
	profiles, err := distinctProfiles(dialects)
	if err != nil {
		return nil, err
	}

	allNames := make(map[string]struct{})

	for _, p := range profiles {
		for name := range p.Catalog() {
			allNames[name] = struct{}{}
		}
	}

	var differing []string

	for name := range allNames {
		impls := make(map[string]struct{})
		present := 0

		for _, p := range profiles {
			impl, ok := p.Catalog()[name]
			if !ok {
				continue
			}

			impls[impl] = struct{}{}
			present++
		}

		if len(impls) > 1 || present < len(profiles) {
			differing = append(differing, name)
		}
	}

	sort.Strings(differing)

	return differing, nil
}

// distinctProfiles resolves dialect identifiers to profiles, dropping
// duplicates so an alias pair does not count as two dialects.
func distinctProfiles(dialects []string) ([]Profile, error) {
	seen := make(map[string]struct{}, len(dialects))
	profiles := make([]Profile, 0, len(dialects))

	for _, dialect := range dialects {
		p, err := Get(dialect)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[p.Name()]; ok {
			continue
		}

		seen[p.Name()] = struct{}{}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
