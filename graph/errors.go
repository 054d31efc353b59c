package graph

import "errors"

// Sentinel errors for graph algorithms.
var (
	// ErrSourceNotFound indicates the source node is absent from the graph.
	ErrSourceNotFound = errors.New("graph: source node not found")

	// ErrTargetNotFound indicates the target node is absent from the graph.
	ErrTargetNotFound = errors.New("graph: target node not found")

	// ErrNoPath indicates no path exists between source and target under
	// the current Agent's rules.
	ErrNoPath = errors.New("graph: no path to target")

	// ErrSourceDoesNotMatch indicates FloodFill's source node failed its
	// own match predicate.
	ErrSourceDoesNotMatch = errors.New("graph: source node does not satisfy match predicate")

	// ErrNoPosition indicates a node required for Visibility has no world
	// position.
	ErrNoPosition = errors.New("graph: node has no world position")
)
