package constants

// --- Pool capacities ---
const (
	PlayerShotCapacity = 10
	EnemyCapacity      = 15
	EnemyShotCapacity  = 30
	LargeCapacity      = 3
	BossCapacity       = 1
	HomingCapacity     = 20
	ExplosionCapacity  = 10
	StarCount          = 100
)

// --- Sizes (square sprites, width == height) ---
const (
	PlayerSize = 64
	ShotSize   = 32
	EnemySize  = 48
	LargeSize  = 64
	BossSize   = 128
	HomingSize = 32
)

// --- Player ---
const (
	PlayerLife         = 1
	PlayerSpeed        = 10
	PlayerShotCooldown = 10
	PlayerShotSpeed    = 10
	PlayerShotPower    = 1
)

// --- Enemies ---
const (
	// EnemyDefaultSpeed is used when a spawn rule omits speed
	EnemyDefaultSpeed = 3

	EnemyShotSpeed = 5
	EnemyShotPower = 1

	// DefaultFireInterval is the aimed-shot cadence of the default variant
	DefaultFireInterval = 70

	// WaveFireInterval is the aimed-shot cadence of the wave variant
	WaveFireInterval = 60
	// WaveDriftPeriod and WaveDriftAmplitude shape x += sin(frame/period)*amp
	WaveDriftPeriod    = 10
	WaveDriftAmplitude = 6

	// LargeBurstInterval is the radial burst cadence of the large variant
	LargeBurstInterval = 60
	// LargeBurstStepDeg is the angular step of the burst, 0..360 inclusive
	LargeBurstStepDeg   = 45
	LargeDriftPhase     = 80
	LargeDriftPeriod    = 50
	LargeDriftAmplitude = 2
	// LargeHoverY is the depth where the large variant stops descending
	LargeHoverY = 100

	// SpawnMargin keeps spawn x inside [margin, width-margin)
	SpawnMargin = 100
)

// --- Boss ---
const (
	BossLife           = 80
	BossSpeed          = 3
	BossHoverY         = 100
	BossDriftPeriod    = 80
	BossDriftAmplitude = 2
	BossFireInterval   = 50
	HomingSpeed        = 5
	HomingPower        = 1
)

// --- Background ---
const (
	StarMinSize    = 1
	StarMaxSize    = 3
	StarMinSpeed   = 1
	StarSpeedRange = 6
)
