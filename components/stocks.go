package components

import "github.com/yohamta/donburi"

// KODirection records which blast zone a fighter crossed.
type KODirection int

const (
	KONone KODirection = iota
	KOLeft
	KORight
	KOTop
	KOBottom
	KODamage // percent threshold, no blast zone crossed
)

var koDirectionNames = map[KODirection]string{
	KONone:   "none",
	KOLeft:   "left",
	KORight:  "right",
	KOTop:    "top",
	KOBottom: "bottom",
	KODamage: "damage",
}

func (d KODirection) String() string {
	if name, ok := koDirectionNames[d]; ok {
		return name
	}
	return "unknown"
}

type StocksData struct {
	Stocks    int
	MaxStocks int

	DamagePercent float64

	HitstunTimer       float64 // seconds
	InvincibilityTimer float64 // seconds

	// KO record, written by physics or match bookkeeping, consumed by
	// the match system. At most one per fighter per tick.
	PendingKO    KODirection
	KOPosition   Vector
	KOd          bool
	RespawnTimer float64 // seconds until respawn while KOd
}

var Stocks = donburi.NewComponentType[StocksData]()
