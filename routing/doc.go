// Package routing implements TransformGraph: a labelled multigraph whose
// nodes are named coordinate systems and whose directed edges carry an
// xform.Transform plus a real-valued, non-negative-or-arbitrary finite cost.
// A query between two labels runs Dijkstra's algorithm over edge costs and
// fuses the winning path into a single xform.Transform, memoizing the
// result.
//
// Mutation (AddEdge) is exclusive and invalidates the entire path cache,
// since adding one edge can change the optimal path between any pair of
// labels. Queries (FindPath) take a shared lock on the graph structure and
// a separate reader-writer lock on the path cache, so concurrent lookups
// that hit the cache never block each other.
package routing
