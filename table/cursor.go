package table

import (
	"tdb/dberr"
)

// Cursor is a positioned reference to a (page, cell) location. It is
// valid only until the next structural modification of the tree or
// until it is discarded; there is no rewind, only advance.
type Cursor struct {
	tbl        *Table
	pageNum    uint32
	cellNum    uint32
	endOfTable bool
}

// beginCursor returns a cursor at the first cell of the root, flagging
// EndOfTable immediately if the root is empty.
func beginCursor(t *Table) (*Cursor, error) {
	p, err := t.pager.GetPage(t.rootPageNum)
	if err != nil {
		return nil, err
	}
	return &Cursor{
		tbl:        t,
		pageNum:    t.rootPageNum,
		cellNum:    0,
		endOfTable: numCells(p) == 0,
	}, nil
}

// findCursor resolves key against the root leaf with binary search,
// returning a cursor at the matching cell or at the unique insertion
// point that preserves ascending order. It fails fatally if the root is
// not a leaf, since internal-node descent is not implemented.
func findCursor(t *Table, target uint32) (*Cursor, error) {
	p, err := t.pager.GetPage(t.rootPageNum)
	if err != nil {
		return nil, err
	}
	if nodeType(p) != Leaf {
		return nil, dberr.NewFatal("find: root is not a leaf; internal-node descent is not implemented")
	}

	n := numCells(p)
	min, onePastMax := uint32(0), n
	for min < onePastMax {
		mid := (min + onePastMax) / 2
		midKey := key(p, mid)
		switch {
		case target == midKey:
			return &Cursor{tbl: t, pageNum: t.rootPageNum, cellNum: mid}, nil
		case target < midKey:
			onePastMax = mid
		default:
			min = mid + 1
		}
	}
	return &Cursor{tbl: t, pageNum: t.rootPageNum, cellNum: min}, nil
}

// EndOfTable reports whether the cursor has advanced past the last cell.
func (c *Cursor) EndOfTable() bool { return c.endOfTable }

// advance moves the cursor to the next cell in order, setting
// EndOfTable once it passes the last one.
func (c *Cursor) advance() error {
	p, err := c.tbl.pager.GetPage(c.pageNum)
	if err != nil {
		return err
	}
	c.cellNum++
	if c.cellNum >= numCells(p) {
		c.endOfTable = true
	}
	return nil
}

// value returns the value region of the cell the cursor points at.
func (c *Cursor) value() ([]byte, error) {
	p, err := c.tbl.pager.GetPage(c.pageNum)
	if err != nil {
		return nil, err
	}
	return value(p, c.cellNum), nil
}
