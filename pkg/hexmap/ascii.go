// pkg/hexmap/ascii.go
package hexmap

import (
	"fmt"
	"strings"
)

// ASCII renders the map as text for debugging. With numbers set each hex is
// labelled with its axial coordinate; with units set occupied hexes show a U
// on their bottom edge.
//
//	 ___     ___
//	/0,0\___/1,2\
//	\___/1,1\___/
//	/1,0\___/2,2\
//	\___/2,1\___/
//	    \___/
func (m *Map) ASCII(numbers, units bool) string {
	width := 3
	if numbers {
		r := m.rows
		if m.cols%2 == 1 {
			r = m.rows - 1
		}
		width = len(fmt.Sprintf("%d,%d", r, m.rows-1+m.cols/2))
	}

	var b strings.Builder
	for col := 0; col < m.cols; col++ {
		if col%2 == 0 {
			b.WriteString(" " + strings.Repeat("_", width))
		} else {
			b.WriteString(" " + strings.Repeat(" ", width))
		}
	}
	b.WriteString("\n")

	for row := 0; row < m.rows; row++ {
		top := "/"
		bottom := "\\"
		for col := 0; col < m.cols; col++ {
			mark := ""
			if units {
				if u, ok := m.Positions[Cell{row + col/2, col}]; ok && u != nil {
					mark = "U"
				}
			}
			if col%2 == 0 {
				label := ""
				if numbers {
					label = fmt.Sprintf("%d,%d", row+col/2, col)
				}
				top += center(label, width, ' ') + "\\"
				bottom += center(mark, width, '_') + "/"
			} else {
				label := " "
				if numbers {
					label = fmt.Sprintf("%d,%d", 1+row+col/2, col)
				}
				top += center(mark, width, '_') + "/"
				bottom += center(label, width, ' ') + "\\"
			}
		}
		if m.cols%2 == 0 && row == 0 {
			top = top[:len(top)-1]
		}
		b.WriteString(top + "\n" + bottom + "\n")
	}

	footer := " "
	for col := 0; col < m.cols-1; col += 2 {
		footer += strings.Repeat(" ", width) + "\\" + strings.Repeat("_", width) + "/"
	}
	b.WriteString(footer + "\n")
	return b.String()
}

// center pads s to width with fill, putting the odd pad on the left when
// width is odd.
func center(s string, width int, fill rune) string {
	margin := width - len(s)
	if margin <= 0 {
		return s
	}
	left := margin/2 + (margin & width & 1)
	pad := string(fill)
	return strings.Repeat(pad, left) + s + strings.Repeat(pad, margin-left)
}
