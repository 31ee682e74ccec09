package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ContactsData remembers which trigger objects a body overlapped on the
// previous tick so that only enter edges produce events.
type ContactsData struct {
	Touching map[*resolv.Object]bool
}

// Enter records the current overlap set and returns the objects that were
// not touching on the previous call, in the order given.
func (c *ContactsData) Enter(current []*resolv.Object) []*resolv.Object {
	next := make(map[*resolv.Object]bool, len(current))
	var entered []*resolv.Object
	for _, obj := range current {
		if next[obj] {
			continue
		}
		next[obj] = true
		if !c.Touching[obj] {
			entered = append(entered, obj)
		}
	}
	c.Touching = next
	return entered
}

var Contacts = donburi.NewComponentType[ContactsData]()
