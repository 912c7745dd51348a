package game

import "github.com/pkg/errors"

// Variant identifies a Blokus game variant.
type Variant uint8

// Supported game variants.
const (
	VariantClassic Variant = iota
	VariantClassic2
	VariantClassic3
	VariantDuo
	VariantJunior
	VariantTrigon
	VariantTrigon2
	VariantTrigon3
)

// BoardType identifies the board geometry a variant is played on.
type BoardType uint8

// Board types.
const (
	BoardClassic BoardType = iota // 20x20 square grid
	BoardDuo                      // 14x14 square grid
	BoardTrigon                   // hexagonal board of triangles
	BoardTrigon3                  // smaller hexagonal board of triangles
)

// String returns the variant name as used on the command line.
func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "classic"
	case VariantClassic2:
		return "classic_2"
	case VariantClassic3:
		return "classic_3"
	case VariantDuo:
		return "duo"
	case VariantJunior:
		return "junior"
	case VariantTrigon:
		return "trigon"
	case VariantTrigon2:
		return "trigon_2"
	case VariantTrigon3:
		return "trigon_3"
	}
	return "UNKNOWN VARIANT"
}

// ParseVariant parses a variant name.
func ParseVariant(s string) (Variant, error) {
	for v := VariantClassic; v <= VariantTrigon3; v++ {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, errors.Errorf("unknown game variant: %q", s)
}

// GetBoardType returns the board type the variant is played on.
func (v Variant) GetBoardType() BoardType {
	switch v {
	case VariantDuo, VariantJunior:
		return BoardDuo
	case VariantTrigon, VariantTrigon2:
		return BoardTrigon
	case VariantTrigon3:
		return BoardTrigon3
	}
	return BoardClassic
}

// NuColors returns the number of colors in the variant.
func (v Variant) NuColors() int {
	switch v {
	case VariantDuo, VariantJunior:
		return 2
	case VariantClassic3, VariantTrigon3:
		return 3
	}
	return 4
}

// NuPlayers returns the number of players in the variant.
func (v Variant) NuPlayers() int {
	switch v {
	case VariantDuo, VariantJunior, VariantClassic2, VariantTrigon2:
		return 2
	case VariantClassic3, VariantTrigon3:
		return 3
	}
	return 4
}

// SecondColor returns the partner color of c in variants where one player
// owns two colors, otherwise c itself.
func (v Variant) SecondColor(c Color) Color {
	if v == VariantClassic2 || v == VariantTrigon2 {
		return Color((int(c) + 2) % 4)
	}
	return c
}

// IsTwoColorsPerPlayer returns true if each player owns two colors.
func (v Variant) IsTwoColorsPerPlayer() bool {
	return v == VariantClassic2 || v == VariantTrigon2
}
