package trace

import "strconv"

// Cursor is a hierarchical step position. The zero value is "before start".
type Cursor struct {
	Major int
	Minor int
	Hop   int
}

// Start is the position of the opening step.
func Start() Cursor { return Cursor{Major: 1} }

// NextMajor opens the next top-level step.
func (c Cursor) NextMajor() Cursor { return Cursor{Major: c.Major + 1} }

// NextMinor opens the next phase within the current top-level step.
func (c Cursor) NextMinor() Cursor { return Cursor{Major: c.Major, Minor: c.Minor + 1} }

// NextHop advances within the current phase.
func (c Cursor) NextHop() Cursor { return Cursor{Major: c.Major, Minor: c.Minor, Hop: c.Hop + 1} }

// String renders c as "M", "M.m" or "M.m.h".
func (c Cursor) String() string {
	s := strconv.Itoa(c.Major)
	if c.Minor == 0 {
		return s
	}
	s += "." + strconv.Itoa(c.Minor)
	if c.Hop == 0 {
		return s
	}

	return s + "." + strconv.Itoa(c.Hop)
}
