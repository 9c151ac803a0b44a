package navmesh

import "github.com/katalvlaran/polynav/geom"

// spatialIndex is a uniform-grid bucket structure mapping a query point
// to the polygons whose bounding box overlaps the point's cell, giving
// sub-linear point location on meshes with roughly uniform polygon size.
// This is the grid-bucket style spec.md's bake step requires "in
// sub-linear time", grounded on gridgraph's cell-indexed bookkeeping
// rather than a general-purpose spatial tree, since the pack offers no
// R-tree/quadtree dependency to wire in.
type spatialIndex struct {
	minX, minY   float64
	cellW, cellH float64
	cols, rows   int
	buckets      [][]int32 // len == cols*rows; each entry a list of polygon ids
}

const targetCellsPerAxis = 32

func buildSpatialIndex(l *Layer) *spatialIndex {
	if len(l.Polygons) == 0 {
		return &spatialIndex{cols: 1, rows: 1, cellW: 1, cellH: 1, buckets: make([][]int32, 1)}
	}

	minX, minY := l.localPoint(l.Polygons[0].Vertices[0]).X, l.localPoint(l.Polygons[0].Vertices[0]).Y
	maxX, maxY := minX, minY
	for _, p := range l.Polygons {
		for _, vi := range p.Vertices {
			pt := l.localPoint(vi)
			if pt.X < minX {
				minX = pt.X
			}
			if pt.X > maxX {
				maxX = pt.X
			}
			if pt.Y < minY {
				minY = pt.Y
			}
			if pt.Y > maxY {
				maxY = pt.Y
			}
		}
	}

	width := maxX - minX
	height := maxY - minY
	if width < geom.Epsilon {
		width = 1
	}
	if height < geom.Epsilon {
		height = 1
	}

	cols := targetCellsPerAxis
	rows := targetCellsPerAxis
	idx := &spatialIndex{
		minX: minX, minY: minY,
		cellW: width / float64(cols), cellH: height / float64(rows),
		cols: cols, rows: rows,
		buckets: make([][]int32, cols*rows),
	}

	for pi, p := range l.Polygons {
		pMinX, pMinY := l.localPoint(p.Vertices[0]).X, l.localPoint(p.Vertices[0]).Y
		pMaxX, pMaxY := pMinX, pMinY
		for _, vi := range p.Vertices {
			pt := l.localPoint(vi)
			if pt.X < pMinX {
				pMinX = pt.X
			}
			if pt.X > pMaxX {
				pMaxX = pt.X
			}
			if pt.Y < pMinY {
				pMinY = pt.Y
			}
			if pt.Y > pMaxY {
				pMaxY = pt.Y
			}
		}
		c0, r0 := idx.cellOf(geom.Point{X: pMinX, Y: pMinY})
		c1, r1 := idx.cellOf(geom.Point{X: pMaxX, Y: pMaxY})
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				b := r*idx.cols + c
				idx.buckets[b] = append(idx.buckets[b], int32(pi))
			}
		}
	}
	return idx
}

func (idx *spatialIndex) cellOf(p geom.Point) (col, row int) {
	col = int((p.X - idx.minX) / idx.cellW)
	row = int((p.Y - idx.minY) / idx.cellH)
	if col < 0 {
		col = 0
	}
	if col >= idx.cols {
		col = idx.cols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= idx.rows {
		row = idx.rows - 1
	}
	return col, row
}

// candidates returns the ids of polygons whose bounding box could contain
// p, deduplicated.
func (idx *spatialIndex) candidates(p geom.Point) []int32 {
	col, row := idx.cellOf(p)
	return idx.buckets[row*idx.cols+col]
}
