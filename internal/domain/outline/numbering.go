package outline

import "strconv"

// numbering hands out section numbers in emission order. Conditional
// sections take a number only when they are emitted, so later numbers shift
// automatically.
type numbering struct {
	section int
	sub     int
}

// next opens a new top-level section and returns its number.
func (n *numbering) next() string {
	n.section++
	n.sub = 0
	return strconv.Itoa(n.section)
}

// nextSub returns the next subsection number inside the current section.
func (n *numbering) nextSub() string {
	n.sub++
	return strconv.Itoa(n.section) + "." + strconv.Itoa(n.sub)
}
