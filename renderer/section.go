package renderer

import (
	"fmt"
	"io"
)

// Section prints rows under a header that is printed with the first row only.
// An empty section prints nothing at all.
type Section struct {
	w      io.Writer
	header func(io.Writer)
	rows   int
}

// NewSection returns a Section writing to w.
func NewSection(w io.Writer, header func(io.Writer)) *Section {
	return &Section{w: w, header: header}
}

// TransactionsSection returns a Section for Row lines, under the column
// titles and the Rule. The title, if any, is printed first.
func TransactionsSection(w io.Writer, title string) *Section {
	return NewSection(w, func(w io.Writer) {
		if title != "" {
			fmt.Fprintln(w, title)
		}
		fmt.Fprintln(w, TransactionsHeader())
		fmt.Fprintln(w, Rule)
	})
}

// Println prints the row, preceded by the header on the first call.
func (s *Section) Println(row string) {
	if s.rows == 0 && s.header != nil {
		s.header(s.w)
	}
	s.rows++
	fmt.Fprintln(s.w, row)
}

// Rows returns the number of rows printed so far.
func (s *Section) Rows() int { return s.rows }
