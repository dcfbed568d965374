package table

import (
	"tdb/pager"
	"tdb/row"
)

// Common node header layout: node_type(1) + is_root(1) + parent_page(4).
const (
	nodeTypeOffset   = 0
	nodeTypeSize     = 1
	isRootOffset     = nodeTypeOffset + nodeTypeSize
	isRootSize       = 1
	parentPageOffset = isRootOffset + isRootSize
	parentPageSize   = 4

	// CommonNodeHeaderSize is the header shared by every node kind.
	CommonNodeHeaderSize = nodeTypeSize + isRootSize + parentPageSize
)

// Leaf node header layout: common header + num_cells(4).
const (
	numCellsOffset = CommonNodeHeaderSize
	numCellsSize   = 4

	// LeafNodeHeaderSize is the byte offset at which leaf cells begin.
	LeafNodeHeaderSize = CommonNodeHeaderSize + numCellsSize
)

// Leaf node body layout: an array of (key, value) cells.
const (
	leafNodeKeyOffset = 0
	leafNodeKeySize   = 4

	// LeafNodeCellSize is the width of one (key, value) cell.
	LeafNodeCellSize = leafNodeKeySize + row.Size

	// LeafNodeSpaceForCells is the body space available after the header.
	LeafNodeSpaceForCells = pager.PageSize - LeafNodeHeaderSize

	// LeafNodeMaxCells bounds how many cells a single leaf page can hold.
	LeafNodeMaxCells = LeafNodeSpaceForCells / LeafNodeCellSize
)
