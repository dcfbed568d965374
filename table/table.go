// Package table implements the leaf B-tree access method: the in-page
// node layout, the cursor used for positioned insert and full scan, and
// the Table that ties a Pager to a root page and its open/close
// lifecycle.
package table

import (
	"tdb/dberr"
	"tdb/pager"
	"tdb/row"
)

// rootPageNum is fixed: the reference core is a single-leaf B-tree and
// never allocates a second page.
const rootPageNum = 0

// Table owns a Pager and the root page number of its B-tree.
type Table struct {
	pager       *pager.Pager
	rootPageNum uint32
}

// Open opens (or creates) the database file at path. On an empty file
// it materializes page 0 and initializes it as an empty leaf root.
func Open(path string) (*Table, error) {
	pg, err := pager.Open(path)
	if err != nil {
		return nil, err
	}

	t := &Table{pager: pg, rootPageNum: rootPageNum}

	if pg.NumPages() == 0 {
		p, err := pg.GetPage(rootPageNum)
		if err != nil {
			return nil, err
		}
		initLeaf(p)
		setIsRoot(p, true)
		setParentPage(p, 0)
	}

	return t, nil
}

// Close flushes every resident page and releases the file descriptor.
// Only pages demand-loaded this session can have been modified, so only
// resident pages need flushing.
func (t *Table) Close() error {
	for i := uint32(0); i < t.pager.NumPages(); i++ {
		if !t.pager.Resident(i) {
			continue
		}
		if err := t.pager.Flush(i); err != nil {
			return err
		}
		t.pager.Release(i)
	}
	return t.pager.CloseFile()
}

// Insert adds row r to the table, keyed by r.ID. It returns
// dberr.ErrTableFull if the root leaf is already at capacity and
// dberr.ErrDuplicateKey if r.ID already exists.
func (t *Table) Insert(r row.Row) error {
	p, err := t.pager.GetPage(t.rootPageNum)
	if err != nil {
		return err
	}

	n := numCells(p)
	if n >= LeafNodeMaxCells {
		return dberr.ErrTableFull
	}

	cur, err := findCursor(t, r.ID)
	if err != nil {
		return err
	}

	if cur.cellNum < n && key(p, cur.cellNum) == r.ID {
		return dberr.ErrDuplicateKey
	}

	if cur.cellNum < n {
		shiftCellsRight(p, cur.cellNum, n)
	}

	setNumCells(p, n+1)
	setKey(p, cur.cellNum, r.ID)
	if err := row.Serialize(r, value(p, cur.cellNum)); err != nil {
		return err
	}
	return nil
}

// Scan visits every row in ascending key order, stopping early if visit
// returns an error.
func (t *Table) Scan(visit func(row.Row) error) error {
	cur, err := beginCursor(t)
	if err != nil {
		return err
	}
	for !cur.EndOfTable() {
		buf, err := cur.value()
		if err != nil {
			return err
		}
		r, err := row.Deserialize(buf)
		if err != nil {
			return err
		}
		if err := visit(r); err != nil {
			return err
		}
		if err := cur.advance(); err != nil {
			return err
		}
	}
	return nil
}

// RootLeafKeys returns the keys stored in the root leaf, in cell order,
// for the `.btree` meta-command.
func (t *Table) RootLeafKeys() ([]uint32, error) {
	p, err := t.pager.GetPage(t.rootPageNum)
	if err != nil {
		return nil, err
	}
	n := numCells(p)
	keys := make([]uint32, n)
	for i := uint32(0); i < n; i++ {
		keys[i] = key(p, i)
	}
	return keys, nil
}
