package table

import (
	"testing"

	"tdb/row"
)

func TestInitLeaf(t *testing.T) {
	var p page
	initLeaf(&p)
	if nodeType(&p) != Leaf {
		t.Fatalf("nodeType = %v; want Leaf", nodeType(&p))
	}
	if numCells(&p) != 0 {
		t.Fatalf("numCells = %d; want 0", numCells(&p))
	}
}

func TestCellKeyValueAccessorsRoundTrip(t *testing.T) {
	var p page
	initLeaf(&p)
	setNumCells(&p, 2)

	r0, _ := row.New(10, "a", "a@x")
	r1, _ := row.New(20, "b", "b@x")

	setKey(&p, 0, 10)
	if err := row.Serialize(r0, value(&p, 0)); err != nil {
		t.Fatalf("Serialize 0: %v", err)
	}
	setKey(&p, 1, 20)
	if err := row.Serialize(r1, value(&p, 1)); err != nil {
		t.Fatalf("Serialize 1: %v", err)
	}

	if key(&p, 0) != 10 || key(&p, 1) != 20 {
		t.Fatalf("keys = %d, %d; want 10, 20", key(&p, 0), key(&p, 1))
	}

	got0, err := row.Deserialize(value(&p, 0))
	if err != nil {
		t.Fatalf("Deserialize 0: %v", err)
	}
	if got0 != r0 {
		t.Fatalf("cell 0 round trip mismatch: got %+v, want %+v", got0, r0)
	}
}

func TestShiftCellsRightPreservesData(t *testing.T) {
	var p page
	initLeaf(&p)
	setNumCells(&p, 3)
	for i := uint32(0); i < 3; i++ {
		setKey(&p, i, (i+1)*10)
	}

	shiftCellsRight(&p, 1, 3)
	setKey(&p, 1, 15)

	want := []uint32{10, 15, 20, 30}
	setNumCells(&p, 4)
	for i, w := range want {
		if got := key(&p, uint32(i)); got != w {
			t.Fatalf("key(%d) = %d; want %d", i, got, w)
		}
	}
}

func TestRootHeaderFlags(t *testing.T) {
	var p page
	initLeaf(&p)
	setIsRoot(&p, true)
	setParentPage(&p, 7)

	if !isRoot(&p) {
		t.Fatal("isRoot = false; want true")
	}
	if parentPage(&p) != 7 {
		t.Fatalf("parentPage = %d; want 7", parentPage(&p))
	}
}
