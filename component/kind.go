package component

// Kind tags the per-kind update logic of an entity
type Kind uint8

const (
	KindPlayer Kind = iota
	KindPlayerShot
	KindEnemy
	KindLarge
	KindBoss
	KindEnemyShot
	KindHoming
)

var kindNames = [...]string{
	KindPlayer:     "player",
	KindPlayerShot: "player_shot",
	KindEnemy:      "enemy",
	KindLarge:      "large",
	KindBoss:       "boss",
	KindEnemyShot:  "enemy_shot",
	KindHoming:     "homing",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsProjectile reports whether the kind resolves contact as a single-hit projectile
func (k Kind) IsProjectile() bool {
	return k == KindPlayerShot || k == KindEnemyShot || k == KindHoming
}

// Variant selects enemy movement and firing pattern
type Variant uint8

const (
	VariantDefault Variant = iota
	VariantWave
	VariantLarge
)

// ParseVariant resolves a schedule variant name
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "", "default":
		return VariantDefault, true
	case "wave":
		return VariantWave, true
	case "large":
		return VariantLarge, true
	}
	return VariantDefault, false
}

func (v Variant) String() string {
	switch v {
	case VariantWave:
		return "wave"
	case VariantLarge:
		return "large"
	default:
		return "default"
	}
}
