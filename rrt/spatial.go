package rrt

import (
	"github.com/dhconnelly/rtreego"

	"github.com/mrpeteypoo/rrtgrid/searchtree"
)

// rtree tuning: 2-D entries, 25–50 per node.
const (
	rtreeDims     = 2
	rtreeMinNodes = 25
	rtreeMaxNodes = 50

	// cellHalfExtent makes each entry a unit box centered on its cell, keeping
	// nearest-neighbor queries well-defined for point data.
	cellHalfExtent = 0.5
)

// cellEntry wraps an occupied cell for R-tree storage.
type cellEntry struct {
	pos  Point
	id   searchtree.NodeID
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *cellEntry) Bounds() rtreego.Rect { return e.rect }

// spatialIndex maintains an R-tree over the cells currently occupied by tree
// nodes, used as the opt-in nearest-neighbor strategy. It ranks candidates
// by Euclidean distance between cell boxes, unlike the linear scan's
// Manhattan metric; see WithSpatialIndex.
type spatialIndex struct {
	tree *rtreego.Rtree
}

func newSpatialIndex() *spatialIndex {
	return &spatialIndex{tree: rtreego.NewTree(rtreeDims, rtreeMinNodes, rtreeMaxNodes)}
}

// insert registers the node occupying pos.
func (s *spatialIndex) insert(pos Point, id searchtree.NodeID) {
	center := rtreego.Point{float64(pos.X), float64(pos.Y)}
	s.tree.Insert(&cellEntry{pos: pos, id: id, rect: center.ToRect(cellHalfExtent)})
}

// nearest returns the node whose cell lies closest to sample.
func (s *spatialIndex) nearest(sample Point) (searchtree.NodeID, bool) {
	got := s.tree.NearestNeighbor(rtreego.Point{float64(sample.X), float64(sample.Y)})
	if got == nil {
		return searchtree.None, false
	}

	return got.(*cellEntry).id, true
}
