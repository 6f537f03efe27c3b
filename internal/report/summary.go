package report

import (
	"io"

	"github.com/fatih/color"
)

var (
	cleanColor    = color.New(color.FgGreen, color.Bold)
	findingsColor = color.New(color.FgRed, color.Bold)
)

// WriteSummary writes a one-line tally of the findings. Colour follows
// fatih/color's terminal detection and NO_COLOR.
func WriteSummary(w io.Writer, count int) error {
	var err error
	switch count {
	case 0:
		_, err = cleanColor.Fprintln(w, "no inconsistencies found")
	case 1:
		_, err = findingsColor.Fprintln(w, "1 inconsistency found")
	default:
		_, err = findingsColor.Fprintf(w, "%d inconsistencies found\n", count)
	}
	return err
}
