package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func printPrompt() {
	fmt.Print("tdb > ")
}

// readInput reads one line from reader, trimming the trailing newline.
// It does not trim leading/trailing spaces beyond that, so a statement
// like "insert  1 a a@x" still round-trips through the parser's own
// whitespace handling. A final, unterminated line before EOF is still
// returned as a statement; the EOF itself is reported on the call after.
func readInput(reader *bufio.Reader) (string, error) {
	input, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && input == "" {
		return "", io.EOF
	}
	return strings.TrimRight(input, "\r\n"), nil
}
