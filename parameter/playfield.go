package parameter

// Playfield dimensions in world units; origin is the screen center, +Y is up
const (
	ScreenWidth       = 448.0 // 224 * 2
	ScreenHeight      = 512.0 // 256 * 2
	TopMenuHeight     = 50.0
	BottomMenuHeight  = 30.0
	SpriteSize        = 32.0
	TopWall           = ScreenHeight/2 - TopMenuHeight
	RightWall         = ScreenWidth / 2
	BottomWall        = -ScreenHeight/2 + BottomMenuHeight
	LeftWall          = -ScreenWidth / 2
	HalfSprite        = SpriteSize / 2
	FormationRowPitch = SpriteSize + 1
	FormationColPitch = SpriteSize + 1
)

// Cannon
const (
	CannonY      = BottomWall + SpriteSize
	CannonWidth  = 26.0 // Collision box, narrower than the sprite cell
	CannonHeight = 16.0
	CannonMinX   = LeftWall + HalfSprite
	CannonMaxX   = RightWall - HalfSprite
)

// Projectiles and bonus target extents
const (
	LaserWidth  = 1.0
	LaserHeight = 10.0
	BombWidth   = 10.0
	BombHeight  = 30.0
	UfoWidth    = SpriteSize
	UfoHeight   = 16.0
	UfoY        = TopWall - HalfSprite
	EnemyWidth  = SpriteSize
	EnemyHeight = SpriteSize
)

// Formation shape
const (
	FormationRows = 5
	FormationCols = 11
	// FormationSize is the invader count of a fresh formation
	FormationSize = FormationRows * FormationCols
)

// Sweep contact thresholds on the invader center
const (
	SweepMaxX = RightWall - SpriteSize
	SweepMinX = LeftWall + SpriteSize
)

// Sprite asset identifiers, opaque to the core
const (
	AssetCannon  = "cannon.png"
	AssetSquid   = "squid.png"
	AssetCrab    = "crab.png"
	AssetOctopus = "octopus.png"
	AssetUfo     = "ufo.png"
)

// HUD and menu labels
const (
	LabelStartGame = "Start Game"
	LabelGameOver  = "GAME OVER"
	LabelScore     = "SCORE"
	LabelLives     = "LIVES"
)
