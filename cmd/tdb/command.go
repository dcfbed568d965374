package main

import (
	"fmt"
	"os"

	"tdb/row"
	"tdb/table"
)

type metaCommandResult int

const (
	metaCommandSuccess metaCommandResult = iota
	metaCommandUnrecognized
)

// doMetaCommand handles a line beginning with '.'. `.exit` performs a
// clean close and terminates the process; everything else either
// prints the requested diagnostic or reports itself unrecognized.
func doMetaCommand(line string, tbl *table.Table) metaCommandResult {
	switch line {
	case ".exit":
		if err := tbl.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	case ".constants":
		printConstants()
	case ".btree":
		printBTree(tbl)
	default:
		return metaCommandUnrecognized
	}
	return metaCommandSuccess
}

func printConstants() {
	fmt.Println("Constants:")
	fmt.Printf("ROW_SIZE: %d\n", row.Size)
	fmt.Printf("COMMON_NODE_HEADER_SIZE: %d\n", table.CommonNodeHeaderSize)
	fmt.Printf("LEAF_NODE_HEADER_SIZE: %d\n", table.LeafNodeHeaderSize)
	fmt.Printf("LEAF_NODE_CELL_SIZE: %d\n", table.LeafNodeCellSize)
	fmt.Printf("LEAF_NODE_SPACE_FOR_CELLS: %d\n", table.LeafNodeSpaceForCells)
	fmt.Printf("LEAF_NODE_MAX_CELLS: %d\n", table.LeafNodeMaxCells)
}

func printBTree(tbl *table.Table) {
	keys, err := tbl.RootLeafKeys()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("leaf (size %d)\n", len(keys))
	for i, k := range keys {
		fmt.Printf("  - %d : %d\n", i, k)
	}
}
