package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// readLines reads r into one line per element, without trailing
// newlines. A final unterminated line still counts.
func readLines(dst []string, r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 16*1024*1024)
	for sc.Scan() {
		dst = append(dst, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return dst, nil
}

// readFileLines appends the lines of file, "-" meaning stdin.
func readFileLines(dst []string, cc *cli.Context, file string) ([]string, error) {
	if file == "-" {
		return readLines(dst, cc.In)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	res, err := readLines(dst, f)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return res, nil
}

// readArgLines gathers lines from all file args, or from stdin when
// there are none.
func readArgLines(cc *cli.Context, args []string) ([]string, error) {
	if len(args) == 0 {
		return readLines(nil, cc.In)
	}
	var (
		lines []string
		err   error
	)
	for _, file := range args {
		lines, err = readFileLines(lines, cc, file)
		if err != nil {
			return nil, err
		}
	}
	return lines, nil
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("error writing: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("error writing: %w", err)
		}
	}
	return bw.Flush()
}
