package main

import (
	"strconv"
	"strings"

	"tdb/row"
)

type statementType int

const (
	statementInsert statementType = iota
	statementSelect
)

type prepareResult int

const (
	prepareSuccess prepareResult = iota
	prepareUnrecognized
	prepareSyntaxError
	prepareStringTooLong
	prepareNegativeID
)

type statement struct {
	kind        statementType
	rowToInsert row.Row
}

// prepareStatement classifies line and, for insert, fully parses and
// validates it. It tokenizes a copy of line (strings.Fields), never the
// caller's original, so the "unrecognized keyword" message printed by
// main can still show the untouched input.
func prepareStatement(line string) (statement, prepareResult) {
	if strings.HasPrefix(line, "insert") {
		return prepareInsert(line)
	}
	if line == "select" {
		return statement{kind: statementSelect}, prepareSuccess
	}
	return statement{}, prepareUnrecognized
}

func prepareInsert(line string) (statement, prepareResult) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return statement{}, prepareSyntaxError
	}

	idStr, username, email := fields[1], fields[2], fields[3]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return statement{}, prepareSyntaxError
	}
	if id < 0 {
		return statement{}, prepareNegativeID
	}
	if len(username) > row.UsernameMaxLen || len(email) > row.EmailMaxLen {
		return statement{}, prepareStringTooLong
	}

	r, err := row.New(uint32(id), username, email)
	if err != nil {
		return statement{}, prepareStringTooLong
	}

	return statement{kind: statementInsert, rowToInsert: r}, prepareSuccess
}
