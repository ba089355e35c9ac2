package component

import (
	"fmt"
	"strings"

	"github.com/milk9111/vibeshowdown/common"
)

// ProjectileKind selects the look and damage of a special attack.
type ProjectileKind int

const (
	ProjectileRobotnik ProjectileKind = iota
	ProjectileSpaghetti
	ProjectileNorris

	projectileKindCount
)

// ProjectileKinds lists every kind in selection order.
var ProjectileKinds = [...]ProjectileKind{ProjectileRobotnik, ProjectileSpaghetti, ProjectileNorris}

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileRobotnik:
		return "robotnik"
	case ProjectileSpaghetti:
		return "spaghetti"
	case ProjectileNorris:
		return "norris"
	default:
		return fmt.Sprintf("ProjectileKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k ProjectileKind) Valid() bool {
	return k >= 0 && k < projectileKindCount
}

// ParseProjectileKind maps a name such as "norris" back to its kind.
func ParseProjectileKind(s string) (ProjectileKind, error) {
	for _, k := range ProjectileKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown projectile kind %q", s)
}

// Announcement is the line a host shows when a projectile of kind k is launched.
func (k ProjectileKind) Announcement() string {
	return fmt.Sprintf("UNLEASHED THE %s VIBE!", strings.ToUpper(k.String()))
}

// Projectile travels upward from the player until it crosses the boss line.
type Projectile struct {
	Kind   ProjectileKind
	Pos    common.Vec2
	Speed  float64
	Damage int
}
