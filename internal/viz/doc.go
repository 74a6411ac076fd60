// Package viz hosts the Bubble Tea backend and the lipgloss styles used by
// the command line output.
//
// The Bubble Tea backend drives the waterfall from tick messages and renders
// it through a [term.Frame]:
//
//	q, Esc, Ctrl+C - quit
//
// Window size changes are ignored; the grid keeps its startup size.
package viz
