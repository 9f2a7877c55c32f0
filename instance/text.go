package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvknap/knapsack"
)

// Parse decodes the text format from r.
//
// Every record present in the input is collected, even beyond the count
// declared in the header, so that a mismatch reaches knapsack.NewCatalog as
// a malformed instance instead of being silently truncated.
//
// Complexity: O(size of input).
func Parse(r io.Reader) (knapsack.Instance, error) {
	var (
		inst     knapsack.Instance
		sc       = bufio.NewScanner(r)
		line     int
		haveHead bool
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		a, b, err := pair(text)
		if err != nil {
			return knapsack.Instance{}, fmt.Errorf("%w: line %d: %w", ErrSyntax, line, err)
		}
		if !haveHead {
			if a > int64(maxCount) {
				return knapsack.Instance{}, fmt.Errorf("%w: line %d: item count %d too large", ErrSyntax, line, a)
			}
			inst.Count = int(a)
			inst.Capacity = b
			haveHead = true
			if a > 0 {
				inst.Entries = make([]knapsack.Entry, 0, min(a, 1<<16))
			}
			continue
		}
		inst.Entries = append(inst.Entries, knapsack.Entry{Value: a, Weight: b})
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return knapsack.Instance{}, fmt.Errorf("%w: line %d: %w", ErrSyntax, line+1, err)
		}
		return knapsack.Instance{}, fmt.Errorf("instance: read: %w", err)
	}
	if !haveHead {
		return knapsack.Instance{}, fmt.Errorf("%w: missing header line", ErrSyntax)
	}

	return inst, nil
}

// maxCount bounds the declared item count accepted in a header.
const maxCount = 1 << 30

// pair parses a line holding exactly two integers.
func pair(text string) (int64, int64, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	a, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

// Write encodes inst in the text format. The header carries len(Entries),
// so any instance round-trips into a consistent one.
func Write(w io.Writer, inst knapsack.Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(inst.Entries), inst.Capacity)
	for _, e := range inst.Entries {
		fmt.Fprintf(bw, "%d %d\n", e.Value, e.Weight)
	}

	return bw.Flush()
}

// FormatResult writes res in the two-line output format:
//
//	<value> <optimal 0|1>
//	<x_0> <x_1> ... <x_{n-1}>
func FormatResult(w io.Writer, res knapsack.Result) error {
	_, err := io.WriteString(w, res.String()+"\n")

	return err
}
