package core

import "fmt"

// Entity is a generational handle to a simulated object
// Slot indexes the dense component tables, Gen guards against reuse of a freed slot
type Entity struct {
	Slot uint32
	Gen  uint32
}

// NilEntity is never alive; slot generations start at 1
var NilEntity = Entity{}

// IsNil reports whether e is the zero handle
func (e Entity) IsNil() bool {
	return e.Gen == 0
}

func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.Slot, e.Gen)
}
