package game

// Piece shape tables. Cells are given relative to an arbitrary origin; they
// are normalized when the orientations are generated. On trigon shapes the
// parity of x+y decides whether a cell is an upward or downward triangle,
// so the raw coordinates below are meaningful, not just relative.

var classicShapes = []shapeDef{
	{name: "1", cells: []Offset{{0, 0}}},
	{name: "2", cells: []Offset{{0, 0}, {1, 0}}},
	{name: "I3", cells: []Offset{{0, 0}, {1, 0}, {2, 0}}},
	{name: "V3", cells: []Offset{{0, 0}, {1, 0}, {0, 1}}},
	{name: "I4", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	{name: "L4", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}}},
	{name: "Z4", cells: []Offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	{name: "O4", cells: []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	{name: "T4", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {1, 1}}},
	{name: "F", cells: []Offset{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}},
	{name: "I5", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
	{name: "L5", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}}},
	{name: "N", cells: []Offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}},
	{name: "P", cells: []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}},
	{name: "T5", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}}},
	{name: "U", cells: []Offset{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}},
	{name: "V5", cells: []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}},
	{name: "W", cells: []Offset{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}}},
	{name: "X", cells: []Offset{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}},
	{name: "Y", cells: []Offset{{1, 0}, {0, 1}, {1, 1}, {1, 2}, {1, 3}}},
	{name: "Z5", cells: []Offset{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}}},
}

// juniorShapes is the Junior piece set: small shapes, two instances each.
var juniorShapes = []shapeDef{
	{name: "1", instances: 2, cells: []Offset{{0, 0}}},
	{name: "2", instances: 2, cells: []Offset{{0, 0}, {1, 0}}},
	{name: "I3", instances: 2, cells: []Offset{{0, 0}, {1, 0}, {2, 0}}},
	{name: "V3", instances: 2, cells: []Offset{{0, 0}, {1, 0}, {0, 1}}},
	{name: "I4", instances: 2, cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	{name: "L4", instances: 2, cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}}},
	{name: "O4", instances: 2, cells: []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	{name: "T4", instances: 2, cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {1, 1}}},
	{name: "Z4", instances: 2, cells: []Offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	{name: "I5", instances: 2, cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
	{name: "L5", instances: 2, cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}}},
	{name: "P", instances: 2, cells: []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}},
}

// trigonShapes is the polyiamond set: all shapes of one to six triangles.
var trigonShapes = []shapeDef{
	{name: "1", cells: []Offset{{0, 0}}},
	{name: "2", cells: []Offset{{0, 0}, {1, 0}}},
	{name: "I3", cells: []Offset{{0, 0}, {1, 0}, {2, 0}}},

	{name: "I4", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	{name: "C4", cells: []Offset{{2, 0}, {1, 1}, {2, 1}, {3, 1}}},
	{name: "Z4", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}}},

	{name: "I5", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
	{name: "L5", cells: []Offset{{2, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 1}}},
	{name: "P5", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {3, 1}}},
	{name: "Y5", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {2, 1}}},

	{name: "I6", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}},
	{name: "O6", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}},
	{name: "C6", cells: []Offset{{2, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}}},
	{name: "L6", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {4, 1}}},
	{name: "S6", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {3, 1}, {4, 1}}},
	{name: "P6", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}}},
	{name: "W6", cells: []Offset{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}, {3, 2}}},
	{name: "Y6", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {2, 1}, {3, 1}}},
	{name: "A6", cells: []Offset{{1, 0}, {2, 0}, {3, 0}, {1, 1}, {2, 1}, {3, 1}}},
	{name: "G6", cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {3, 1}, {3, 2}}},
	{name: "X6", cells: []Offset{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}},
	{name: "V6", cells: []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}}},
}
