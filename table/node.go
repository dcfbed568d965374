package table

import (
	"encoding/binary"

	"tdb/pager"
)

// NodeType distinguishes a leaf page (holding cells) from an internal
// page (holding child pointers). This engine only ever writes Leaf;
// Internal is reserved for multi-page trees and is never produced by
// this package.
type NodeType byte

const (
	Leaf     NodeType = 0
	Internal NodeType = 1
)

type page = [pager.PageSize]byte

// nodeType reads the node-kind tag common to every page.
func nodeType(p *page) NodeType { return NodeType(p[nodeTypeOffset]) }

func setNodeType(p *page, t NodeType) { p[nodeTypeOffset] = byte(t) }

func isRoot(p *page) bool { return p[isRootOffset] != 0 }

func setIsRoot(p *page, v bool) {
	if v {
		p[isRootOffset] = 1
	} else {
		p[isRootOffset] = 0
	}
}

func parentPage(p *page) uint32 {
	return binary.LittleEndian.Uint32(p[parentPageOffset : parentPageOffset+parentPageSize])
}

func setParentPage(p *page, v uint32) {
	binary.LittleEndian.PutUint32(p[parentPageOffset:parentPageOffset+parentPageSize], v)
}

// numCells returns the leaf's cell count.
func numCells(p *page) uint32 {
	return binary.LittleEndian.Uint32(p[numCellsOffset : numCellsOffset+numCellsSize])
}

func setNumCells(p *page, n uint32) {
	binary.LittleEndian.PutUint32(p[numCellsOffset:numCellsOffset+numCellsSize], n)
}

// cellOffset returns the byte offset of cell i within the page.
func cellOffset(i uint32) uint32 {
	return LeafNodeHeaderSize + i*LeafNodeCellSize
}

// cell returns the full (key, value) region for cell i: a view into
// the page, not a copy.
func cell(p *page, i uint32) []byte {
	off := cellOffset(i)
	return p[off : off+LeafNodeCellSize]
}

// key returns the key stored in cell i.
func key(p *page, i uint32) uint32 {
	c := cell(p, i)
	return binary.LittleEndian.Uint32(c[leafNodeKeyOffset : leafNodeKeyOffset+leafNodeKeySize])
}

func setKey(p *page, i uint32, k uint32) {
	c := cell(p, i)
	binary.LittleEndian.PutUint32(c[leafNodeKeyOffset:leafNodeKeyOffset+leafNodeKeySize], k)
}

// value returns the row region of cell i: a view into the page.
func value(p *page, i uint32) []byte {
	c := cell(p, i)
	return c[leafNodeKeySize:]
}

// initLeaf writes num_cells = 0 and marks the page as a Leaf. It does
// not touch is_root or parent_page, which the caller sets separately.
func initLeaf(p *page) {
	setNodeType(p, Leaf)
	setNumCells(p, 0)
}

// shiftCellsRight moves cells [from, n) up by one slot, copying from
// the last cell to the first so overlapping regions never corrupt each
// other. The caller is responsible for updating num_cells afterward.
func shiftCellsRight(p *page, from, n uint32) {
	for i := n; i > from; i-- {
		copy(cell(p, i), cell(p, i-1))
	}
}
