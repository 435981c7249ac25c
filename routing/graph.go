package routing

import (
	"math"
	"sync"

	"github.com/ome-ngff/coordspace/xform"
)

// edgeRecord is one directed edge of the multigraph: a transform between two
// labels of known dimensionality, with an associated traversal cost.
type edgeRecord[L comparable] struct {
	to        L
	transform xform.Transform
	cost      float64
}

// pairKey identifies a (from, to) label pair in the path cache.
type pairKey[L comparable] struct {
	from, to L
}

// cacheEntry is a memoized FindPath result. ok=false represents a memoized
// "no path exists" answer, distinct from "never computed" (absent key).
type cacheEntry[L comparable] struct {
	transform xform.Transform
	ok        bool
}

// TransformGraph is a labelled multigraph of named coordinate systems. L is
// the label type: any comparable type (string labels are the common case).
// Each label's dimensionality is frozen the first time it is seen; edges
// that disagree with a previously registered dimensionality are rejected.
//
// Mutation (AddEdge) requires the caller hold no concurrent FindPath calls
// past the point where the graph's topology matters to them: AddEdge takes
// an exclusive lock on the graph structure for its own duration. FindPath
// takes a shared lock on the structure and a separate lock on the path
// cache, so cache hits under concurrent read load never contend with each
// other.
type TransformGraph[L comparable] struct {
	muGraph sync.RWMutex
	ndim    map[L]int
	edges   map[L][]edgeRecord[L]

	muCache sync.RWMutex
	cache   map[pairKey[L]]cacheEntry[L]
	poison  bool
}

// NewTransformGraph returns an empty TransformGraph.
func NewTransformGraph[L comparable]() *TransformGraph[L] {
	return &TransformGraph[L]{
		ndim:  make(map[L]int),
		edges: make(map[L][]edgeRecord[L]),
		cache: make(map[pairKey[L]]cacheEntry[L]),
	}
}

// AddEdge registers src and tgt (freezing their dimensionality from
// transform's InputNdim/OutputNdim on first sight) and inserts a directed
// edge from src to tgt carrying transform at the given cost.
//
//   - A self-loop (src == tgt) is dropped silently; FindPath on equal
//     labels always answers with an identity, so no edge is needed.
//   - If transform.IsIdentity(), it is replaced by a fresh Identity of the
//     same dimensionality and its effective cost is forced to 0, regardless
//     of the cost argument: cross-system renames are free.
//   - If withInverse is true and transform.Invert() succeeds, the reverse
//     edge is also inserted at the same cost.
//   - Adding any edge unconditionally invalidates the whole path cache:
//     the optimal path between any two labels can change when one edge is
//     added.
//
// Returns whether an inverse edge was inserted.
func (g *TransformGraph[L]) AddEdge(src, tgt L, transform xform.Transform, cost float64, withInverse bool) (bool, error) {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return false, ErrNonFiniteCost
	}

	g.muGraph.Lock()
	defer g.muGraph.Unlock()

	g.invalidateCache()

	if err := g.registerLabel(src, transform.InputNdim()); err != nil {
		return false, err
	}
	if err := g.registerLabel(tgt, transform.OutputNdim()); err != nil {
		return false, err
	}

	if src == tgt {
		return false, nil
	}

	fwd := transform
	fwdCost := cost
	if transform.IsIdentity() {
		id, err := xform.NewIdentity(transform.InputNdim())
		if err != nil {
			return false, err
		}
		fwd = id
		fwdCost = 0
	}

	insertedInverse := false
	if withInverse {
		if inv, ok := transform.Invert(); ok {
			g.insertEdge(tgt, src, inv, cost)
			insertedInverse = true
		}
	}
	g.insertEdge(src, tgt, fwd, fwdCost)

	return insertedInverse, nil
}

func (g *TransformGraph[L]) registerLabel(label L, ndim int) error {
	if existing, ok := g.ndim[label]; ok {
		if existing != ndim {
			return ErrDimensionConflict
		}

		return nil
	}
	g.ndim[label] = ndim

	return nil
}

func (g *TransformGraph[L]) insertEdge(from, to L, transform xform.Transform, cost float64) {
	g.edges[from] = append(g.edges[from], edgeRecord[L]{to: to, transform: transform, cost: cost})
}

// FindPath returns the fused transformation from label from to label to, or
// (nil, false) if either label is unknown or no path connects them.
//
//  1. Unknown labels: (nil, false).
//  2. Equal labels: a fresh Identity of the shared dimensionality.
//  3. Cache hit: the cached answer, including a cached "no path".
//  4. Direct-edge shortcut: if at least one edge goes straight from `from`
//     to `to`, the cheapest one wins; an identity transform short-circuits
//     to a fresh Identity.
//  5. Otherwise, Dijkstra's algorithm runs over edge costs; on no path, the
//     negative result is cached.
//  6. Otherwise, the cheapest edge between each consecutive pair of nodes
//     on the shortest path is fed into a SequenceBuilder and best-effort
//     built (identities elided, a sole survivor unwrapped, otherwise a
//     Sequence).
func (g *TransformGraph[L]) FindPath(from, to L) (xform.Transform, bool) {
	g.muGraph.RLock()
	defer g.muGraph.RUnlock()

	fromDim, fromOK := g.ndim[from]
	_, toOK := g.ndim[to]
	if !fromOK || !toOK {
		return nil, false
	}
	if from == to {
		id, err := xform.NewIdentity(fromDim)
		if err != nil {
			return nil, false
		}

		return id, true
	}

	if t, ok, hit := g.cacheGet(from, to); hit {
		return t, ok
	}

	if t, found := g.cheapestDirectEdge(from, to); found {
		if t.IsIdentity() {
			id, err := xform.NewIdentity(fromDim)
			if err != nil {
				return g.cachePut(from, to, nil, false)
			}

			return g.cachePut(from, to, id, true)
		}

		return g.cachePut(from, to, t, true)
	}

	path, ok := g.shortestPath(from, to)
	if !ok {
		return g.cachePut(from, to, nil, false)
	}

	builder := xform.NewSequenceBuilder()
	for i := 1; i < len(path); i++ {
		edge, found := g.cheapestDirectEdge(path[i-1], path[i])
		if !found {
			return g.cachePut(from, to, nil, false)
		}
		builder = builder.Add(edge)
	}
	fused, err := builder.BuildBestEffort()
	if err != nil {
		return g.cachePut(from, to, nil, false)
	}

	return g.cachePut(from, to, fused, true)
}

// cheapestDirectEdge returns the minimum-cost edge from `from` straight to
// `to`, if any exists.
func (g *TransformGraph[L]) cheapestDirectEdge(from, to L) (xform.Transform, bool) {
	var best xform.Transform
	bestCost := math.Inf(1)
	found := false
	for _, e := range g.edges[from] {
		if e.to != to {
			continue
		}
		if !found || e.cost < bestCost {
			best, bestCost, found = e.transform, e.cost, true
		}
	}

	return best, found
}

func (g *TransformGraph[L]) invalidateCache() {
	g.muCache.Lock()
	defer g.muCache.Unlock()
	g.poison = false
	g.cache = make(map[pairKey[L]]cacheEntry[L])
}

// cacheGet consults the path cache. A poisoned cache reads as empty: every
// lookup misses, and the poison flag is left set (only cachePut and
// invalidateCache clear it). hit reports whether an entry was present
// (including a cached negative answer).
func (g *TransformGraph[L]) cacheGet(from, to L) (t xform.Transform, ok, hit bool) {
	g.muCache.RLock()
	defer g.muCache.RUnlock()
	if g.poison {
		return nil, false, false
	}
	entry, present := g.cache[pairKey[L]{from: from, to: to}]
	if !present {
		return nil, false, false
	}

	return entry.transform, entry.ok, true
}

// cachePut clears the poison flag, records the answer and returns it. A
// panic while writing is recovered by setting the poison flag and emptying
// the cache, since a poisoned cache contains untrusted entries; the next
// successful cachePut clears the flag again.
func (g *TransformGraph[L]) cachePut(from, to L, t xform.Transform, ok bool) (xform.Transform, bool) {
	defer func() {
		if r := recover(); r != nil {
			g.muCache.Lock()
			g.poison = true
			g.cache = make(map[pairKey[L]]cacheEntry[L])
			g.muCache.Unlock()
		}
	}()

	g.muCache.Lock()
	defer g.muCache.Unlock()
	g.poison = false
	g.cache[pairKey[L]{from: from, to: to}] = cacheEntry[L]{transform: t, ok: ok}

	return t, ok
}
