package treasure

import "github.com/vovakirdan/treasure-hunt/internal/core"

// Image names handed to the renderer.
const (
	ImageBackground = "background"
	ImageChest      = "chest"
	ImagePlayer     = "player"
	ImageEnemy      = "enemy"
	ImageItem       = "item"
)

// Entity sizes in logical units.
const (
	EnemySize = 50
	ItemSize  = 30
	PowerSize = 30
	BoxSize   = 50
)

// Fixed treasure box position.
const (
	BoxX = 375
	BoxY = 50
)

// Entity is anything with a position, a size, and an image.
type Entity struct {
	core.Box
	Image core.Image
}

func newEntity(x, y float64, w, h int, image string) Entity {
	return Entity{
		Box:   core.Box{X: x, Y: y, W: w, H: h},
		Image: core.Image{Name: image, W: w, H: h},
	}
}

// Player is the avatar steered by input.
type Player struct {
	Entity
	Speed int
}

// Move applies axis deltas scaled by speed and keeps the whole box on screen.
func (p *Player) Move(dx, dy, screenW, screenH int) {
	p.X = core.Clamp(p.X+float64(dx*p.Speed), 0, float64(screenW-p.W))
	p.Y = core.Clamp(p.Y+float64(dy*p.Speed), 0, float64(screenH-p.H))
}

// bouncer moves horizontally and reflects off the left and right edges.
type bouncer struct {
	Entity
	Speed int
}

// Move advances one tick and bounces at the edges.
func (b *bouncer) Move(screenW int) {
	b.X += float64(b.Speed)
	if b.X <= 0 {
		b.X = 0
		b.Speed = core.Abs(b.Speed)
	} else if b.X >= float64(screenW-b.W) {
		b.X = float64(screenW - b.W)
		b.Speed = -core.Abs(b.Speed)
	}
}

// Enemy roams horizontally; touching it costs a life unless a power is active.
type Enemy struct {
	bouncer
}

// ItemKind is the flavor of a treasure item.
type ItemKind int

const (
	ItemGem ItemKind = iota
	ItemCoin
	ItemCrown
	ItemRuby
	ItemEmerald
	ItemDiamond
	ItemSapphire
	ItemGold
	ItemKindCount // Sentinel for counting kinds
)

// String returns the name of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemGem:
		return "gem"
	case ItemCoin:
		return "coin"
	case ItemCrown:
		return "crown"
	case ItemRuby:
		return "ruby"
	case ItemEmerald:
		return "emerald"
	case ItemDiamond:
		return "diamond"
	case ItemSapphire:
		return "sapphire"
	case ItemGold:
		return "gold"
	default:
		return "?"
	}
}

// TreasureItem is a collectible scattered when the box opens.
type TreasureItem struct {
	bouncer
	Kind      ItemKind
	Collected bool
	Color     core.Color // Override color; zero means draw the image
}

// PowerKind is the effect a power-up grants.
type PowerKind int

const (
	PowerNone PowerKind = iota
	PowerSpeed
	PowerShield
	PowerPoints
)

// powerKinds are the kinds a spawned power-up rolls from.
var powerKinds = []PowerKind{PowerSpeed, PowerShield, PowerPoints}

// String returns the name of the power kind.
func (k PowerKind) String() string {
	switch k {
	case PowerSpeed:
		return "speed"
	case PowerShield:
		return "shield"
	case PowerPoints:
		return "points"
	default:
		return "none"
	}
}

// PowerUp is a stationary pickup drawn as a colored square.
type PowerUp struct {
	Entity
	Kind  PowerKind
	Color core.Color
}

// TreasureBox is the chest at the top of the playfield.
type TreasureBox struct {
	Entity
	Opened bool
}

// Palette is the set of colors a power-up may take.
var Palette = []core.Color{
	core.ColorBlue,
	core.ColorGreen,
	core.ColorRed,
	core.ColorYellow,
	core.ColorPink,
	core.ColorPurple,
	core.ColorWhite,
	core.ColorOrange,
	core.ColorBlack,
	core.ColorSkyBlue,
}
