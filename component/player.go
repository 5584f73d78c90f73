package component

// Player marks the input-controlled ship
type Player struct {
	// Speed is horizontal units per second
	Speed float64
}
