package resample

import (
	"strconv"
	"strings"
)

// Chunker partitions an n-dimensional coordinate space into a regular grid
// of fixed-shape chunks and locates, for any coordinate, which chunk holds
// it and the coordinate's offset within that chunk.
type Chunker struct {
	chunkShape []int
	nChunks    []int
	extents    []int
}

// NewChunker builds a Chunker from a per-dimension chunk shape and the
// overall extents of the chunked space. The chunk grid's size per dimension
// is extents[d] ceiling-divided by chunkShape[d]; the last chunk along an
// axis may therefore hold fewer than chunkShape[d] elements.
func NewChunker(chunkShape, extents []int) (*Chunker, error) {
	if len(chunkShape) == 0 || len(extents) == 0 {
		return nil, ErrEmptyExtents
	}
	if len(chunkShape) != len(extents) {
		return nil, ErrChunkShapeMismatch
	}
	nChunks := make([]int, len(chunkShape))
	for d, e := range extents {
		if e <= 0 {
			return nil, ErrNonPositiveExtent
		}
		if chunkShape[d] <= 0 {
			return nil, ErrNonPositiveExtent
		}
		nChunks[d] = (e + chunkShape[d] - 1) / chunkShape[d]
	}
	cs := make([]int, len(chunkShape))
	copy(cs, chunkShape)
	ex := make([]int, len(extents))
	copy(ex, extents)

	return &Chunker{chunkShape: cs, nChunks: nChunks, extents: ex}, nil
}

// Extents is the overall (unchunked) coordinate space size.
func (c *Chunker) Extents() []int { return c.extents }

// NChunks is the chunk grid's size per dimension: extents[d] ceiling-divided
// by the chunk shape's d'th entry.
func (c *Chunker) NChunks() []int { return c.nChunks }

// Offset locates coord's chunk id and in-chunk offset. ok is false when
// coord is negative or falls outside Extents() in any dimension.
func (c *Chunker) Offset(coord []int) (chunkID, offset []int, ok bool) {
	n := len(c.chunkShape)
	if len(coord) != n {
		return nil, nil, false
	}
	chunkID = make([]int, n)
	offset = make([]int, n)
	for d, v := range coord {
		if v < 0 || v >= c.extents[d] {
			return nil, nil, false
		}
		chunkID[d] = v / c.chunkShape[d]
		offset[d] = v % c.chunkShape[d]
	}

	return chunkID, offset, true
}

// ChunkSource supplies the BoundedIndex backing one chunk, identified by its
// chunk coordinate. It may report a chunk as absent (e.g. a chunk that was
// never written), distinct from a chunk that exists but holds a default
// fill value.
type ChunkSource[T any] interface {
	Chunk(chunkID []int) (BoundedIndex[T], bool)
}

// ChunkedArray is a BoundedIndex[T] assembled from a regular grid of
// independently stored chunks, each itself a BoundedIndex[T]. Its bulk and
// column forms partition the incoming coordinates by destination chunk
// before dispatching, so a batch spanning several chunks costs one
// BulkGetUnchecked call per touched chunk rather than one call per
// coordinate.
type ChunkedArray[T any] struct {
	chunker *Chunker
	source  ChunkSource[T]
}

// NewChunkedArray wraps source behind chunker's coordinate-to-chunk
// partitioning.
func NewChunkedArray[T any](chunker *Chunker, source ChunkSource[T]) *ChunkedArray[T] {
	return &ChunkedArray[T]{chunker: chunker, source: source}
}

// Extents implements BoundedIndex.
func (c *ChunkedArray[T]) Extents() []int { return c.chunker.Extents() }

// Get implements BoundedIndex: out-of-range coordinates and coordinates
// landing in an absent chunk both report false.
func (c *ChunkedArray[T]) Get(coord []int) (T, bool) {
	var zero T
	chunkID, offset, ok := c.chunker.Offset(coord)
	if !ok {
		return zero, false
	}
	chunk, ok := c.source.Chunk(chunkID)
	if !ok {
		return zero, false
	}

	return chunk.Get(offset)
}

// GetUnchecked implements BoundedIndex. Like the rest of the *Unchecked
// contract, coord is assumed already validated against Extents(); an absent
// destination chunk is a programmer error here and panics rather than
// returning a zero value.
func (c *ChunkedArray[T]) GetUnchecked(coord []int) T {
	chunkID, offset, ok := c.chunker.Offset(coord)
	if !ok {
		panic("resample: ChunkedArray.GetUnchecked: coord out of range")
	}
	chunk, ok := c.source.Chunk(chunkID)
	if !ok {
		panic("resample: ChunkedArray.GetUnchecked: chunk absent")
	}

	return chunk.GetUnchecked(offset)
}

// chunkGroup accumulates every query destined for one chunk: its in-chunk
// offsets and the positions in the caller's output slice they must land in.
type chunkGroup struct {
	chunkID []int
	offsets [][]int
	at      []int
}

func chunkKey(id []int) string {
	parts := make([]string, len(id))
	for i, v := range id {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// BulkGetUnchecked implements BoundedIndex: coords are partitioned by
// destination chunk id, each touched chunk's BulkGetUnchecked is invoked
// once over its own offsets, and the results are scattered back into out at
// their original positions.
func (c *ChunkedArray[T]) BulkGetUnchecked(coords [][]int, out []T) {
	groups := make(map[string]*chunkGroup)
	var order []string
	for i, coord := range coords {
		chunkID, offset, ok := c.chunker.Offset(coord)
		if !ok {
			panic("resample: ChunkedArray.BulkGetUnchecked: coord out of range")
		}
		key := chunkKey(chunkID)
		g, found := groups[key]
		if !found {
			g = &chunkGroup{chunkID: chunkID}
			groups[key] = g
			order = append(order, key)
		}
		g.offsets = append(g.offsets, offset)
		g.at = append(g.at, i)
	}
	for _, key := range order {
		g := groups[key]
		chunk, ok := c.source.Chunk(g.chunkID)
		if !ok {
			panic("resample: ChunkedArray.BulkGetUnchecked: chunk absent")
		}
		scratch := make([]T, len(g.offsets))
		chunk.BulkGetUnchecked(g.offsets, scratch)
		for j, pos := range g.at {
			out[pos] = scratch[j]
		}
	}
}

// ColumnGetUnchecked implements BoundedIndex by reconstructing each sample's
// coordinate from the column slices and delegating to BulkGetUnchecked's
// chunk-grouping logic.
func (c *ChunkedArray[T]) ColumnGetUnchecked(cols [][]int, out []T) {
	ndim := len(cols)
	if ndim == 0 {
		return
	}
	n := len(cols[0])
	coords := make([][]int, n)
	for i := 0; i < n; i++ {
		coord := make([]int, ndim)
		for d := 0; d < ndim; d++ {
			coord[d] = cols[d][i]
		}
		coords[i] = coord
	}
	c.BulkGetUnchecked(coords, out)
}
