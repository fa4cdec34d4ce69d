package terrain

// Point is a cell coordinate, X is the column and Y the row
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Neg returns the reversed vector
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// IsZero reports whether p is the zero vector
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Neighbors lists the 8-neighborhood offsets in the fixed enumeration order
// used by region growth, seekers and random headings
var Neighbors = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
