package sample

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts assembled polylines to a string of SVG path commands, one
// "M x,y L x,y ..." run per polyline. Degenerate single-point polylines
// produce a bare move command.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(lines []Polyline, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, lines, opts)
	return sb.String()
}

// WriteSVG converts assembled polylines to SVG path commands and writes them
// to w.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, lines []Polyline, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		return s
	}
	for i, line := range lines {
		if err != nil {
			return err
		}
		if i > 0 {
			writef(" ")
		}
		for j, pt := range line {
			if j == 0 {
				writef("M%s,%s", format(pt.X), format(pt.Y))
			} else {
				writef(" L%s,%s", format(pt.X), format(pt.Y))
			}
		}
	}
	return err
}
