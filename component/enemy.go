package component

import "github.com/lixenwraith/invaders/parameter"

// EnemyKind identifies the invader species
type EnemyKind uint8

const (
	EnemySquid EnemyKind = iota
	EnemyCrab
	EnemyOctopus
)

func (k EnemyKind) String() string {
	switch k {
	case EnemySquid:
		return "squid"
	case EnemyCrab:
		return "crab"
	case EnemyOctopus:
		return "octopus"
	default:
		return "unknown"
	}
}

// Asset returns the sprite atlas for the kind
func (k EnemyKind) Asset() string {
	switch k {
	case EnemySquid:
		return parameter.AssetSquid
	case EnemyCrab:
		return parameter.AssetCrab
	default:
		return parameter.AssetOctopus
	}
}

// Points returns the base bounty for the kind
func (k EnemyKind) Points() int {
	switch k {
	case EnemySquid:
		return parameter.PointsSquid
	case EnemyCrab:
		return parameter.PointsCrab
	default:
		return parameter.PointsOctopus
	}
}

// KindForRow maps a formation row to its species: squid on top, two crab rows, octopus below
func KindForRow(row int) EnemyKind {
	switch {
	case row == 0:
		return EnemySquid
	case row <= 2:
		return EnemyCrab
	default:
		return EnemyOctopus
	}
}

// EnemyComponent is an invader with its base bounty
type EnemyComponent struct {
	Kind   EnemyKind
	Points int
}

// EnemyPositionComponent is the invader's cell inside the formation grid
type EnemyPositionComponent struct {
	Col int // 0..10
	Row int // 0..4, 0 is the top row
}

// InRange reports whether the cell lies inside the formation grid
func (p EnemyPositionComponent) InRange() bool {
	return p.Col >= 0 && p.Col < parameter.FormationCols &&
		p.Row >= 0 && p.Row < parameter.FormationRows
}
