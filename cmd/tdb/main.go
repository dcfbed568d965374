// Command tdb is the interactive shell for the page-organized,
// single-table database engine implemented by the table, pager, and
// row packages. It owns statement parsing, dispatch, and result
// formatting; the storage engine itself knows nothing about text input.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"tdb/dberr"
	"tdb/row"
	"tdb/table"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("A database filename is required.")
		os.Exit(1)
	}

	tbl, err := table.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		printPrompt()
		line, err := readInput(reader)
		if err != nil {
			// EOF on stdin behaves like .exit: close cleanly and stop.
			if closeErr := tbl.Close(); closeErr != nil {
				fmt.Fprintln(os.Stderr, closeErr)
				os.Exit(1)
			}
			return
		}

		if len(line) > 0 && line[0] == '.' {
			if doMetaCommand(line, tbl) == metaCommandUnrecognized {
				fmt.Printf("Unrecognized command: '%s'\n", line)
			}
			continue
		}

		stmt, result := prepareStatement(line)
		switch result {
		case prepareSuccess:
		case prepareSyntaxError:
			fmt.Println("Syntax error. Failed to parse statement.")
			continue
		case prepareStringTooLong:
			fmt.Println("String is too long.")
			continue
		case prepareNegativeID:
			fmt.Println("ID must be positive.")
			continue
		case prepareUnrecognized:
			fmt.Printf("Unrecognized keyword at start of '%s'.\n", line)
			continue
		}

		executeStatement(stmt, tbl)
	}
}

func executeStatement(stmt statement, tbl *table.Table) {
	switch stmt.kind {
	case statementInsert:
		executeInsert(stmt, tbl)
	case statementSelect:
		executeSelect(tbl)
	}
}

func executeInsert(stmt statement, tbl *table.Table) {
	err := tbl.Insert(stmt.rowToInsert)
	switch {
	case err == nil:
		fmt.Println("Executed.")
	case errors.Is(err, dberr.ErrTableFull):
		fmt.Println("Error: Table is full.")
	case errors.Is(err, dberr.ErrDuplicateKey):
		fmt.Println("Error: Duplicate key.")
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func executeSelect(tbl *table.Table) {
	err := tbl.Scan(func(r row.Row) error {
		fmt.Printf("(%d, %s, %s)\n", r.ID, r.Username, r.Email)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Executed.")
}
