// internal/app/console.go
package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go-hexmap/pkg/hexmap"
)

// RunConsole prints the map after every command read from in until "q" or
// end of input.
//
//	U        toggle unit markers
//	N        toggle coordinates
//	U r,c    add or remove a unit on r,c
//	q        quit
func RunConsole(in io.Reader, out io.Writer, m *hexmap.Map, numbers, units bool) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, m.ASCII(numbers, units))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "q":
			return nil
		case line == "U":
			units = !units
		case line == "N":
			numbers = !numbers
		case strings.HasPrefix(line, "U "):
			cell, err := hexmap.ParseCell(line[2:])
			if err != nil {
				fmt.Fprintf(out, "invalid cell: %v\n", err)
				continue
			}
			if m.Remove(cell) != nil {
				fmt.Fprintf(out, "Removing unit at %v\n", cell)
			} else if err := m.Place(cell, NewMarker()); err != nil {
				fmt.Fprintf(out, "%v\n", err)
				continue
			} else {
				fmt.Fprintf(out, "Adding unit at %v\n", cell)
			}
		default:
			fmt.Fprintln(out, "unrecognized input.")
			continue
		}
		fmt.Fprint(out, m.ASCII(numbers, units))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}
	return nil
}
