package orbit

import "strings"

// ParseEdges reads one "Parent)Child" edge per line. A line that splits
// into any number of identifiers other than two aborts parsing with a
// *LineError.
func ParseEdges(lines []string) ([]Edge, error) {
	edges := make([]Edge, 0, len(lines))
	for i, line := range lines {
		ids := strings.Split(line, Separator)
		if len(ids) != 2 {
			return nil, &LineError{Line: i, Content: line, Tokens: len(ids)}
		}
		edges = append(edges, Edge{Parent: ids[0], Child: ids[1]})
	}

	return edges, nil
}

// Parse is ParseEdges followed by BuildGraph.
func Parse(lines []string) (*Graph, error) {
	edges, err := ParseEdges(lines)
	if err != nil {
		return nil, err
	}

	return BuildGraph(edges)
}
