// Package inventory implements the capacity-limited item storage carried by
// players. Items are referenced by catalog id only.
package inventory

// Base capacity before any satchel perk is unlocked.
const (
	BaseSlots     = 2
	BaseStackSize = 2
	satchelPrefix = "satchel_"
)

// Tier is one satchel capacity step, unlocked by owning PerkID.
type Tier struct {
	PerkID    string
	Slots     int
	StackSize int
}

// Tiers lists satchel perks from lowest to highest; capacity strictly increases.
var Tiers = []Tier{
	{PerkID: satchelPrefix + "1", Slots: 4, StackSize: 5},
	{PerkID: satchelPrefix + "2", Slots: 6, StackSize: 10},
	{PerkID: satchelPrefix + "3", Slots: 8, StackSize: 20},
}

// Slot is one stack of a single item id.
type Slot struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Inventory is an ordered list of slots bounded by MaxSlots and MaxStackSize.
type Inventory struct {
	slots        []Slot
	maxSlots     int
	maxStackSize int
}

// New returns an empty inventory at base capacity.
func New() *Inventory {
	return &Inventory{maxSlots: BaseSlots, maxStackSize: BaseStackSize}
}

func (inv *Inventory) MaxSlots() int     { return inv.maxSlots }
func (inv *Inventory) MaxStackSize() int { return inv.maxStackSize }
func (inv *Inventory) Len() int          { return len(inv.slots) }

// Slots returns a copy of the current slots in order.
func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// UpdateCapacity recomputes limits from the highest satchel tier present in
// unlocked. Existing slots are kept even if the new limits are smaller.
func (inv *Inventory) UpdateCapacity(unlocked map[string]bool) {
	inv.maxSlots, inv.maxStackSize = BaseSlots, BaseStackSize
	for _, t := range Tiers {
		if unlocked[t.PerkID] {
			inv.maxSlots, inv.maxStackSize = t.Slots, t.StackSize
		}
	}
}

// Quantity returns the total units of itemID held across all slots.
func (inv *Inventory) Quantity(itemID string) int {
	n := 0
	for _, s := range inv.slots {
		if s.ItemID == itemID {
			n += s.Quantity
		}
	}
	return n
}

// AddItem places up to qty units of itemID, topping up existing stacks first
// and then opening new slots. Units that fit are kept even when the rest do
// not; the result is false unless all qty units were placed.
func (inv *Inventory) AddItem(itemID string, qty int) bool {
	if qty <= 0 || itemID == "" {
		return false
	}
	remaining := qty
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		s := &inv.slots[i]
		if s.ItemID != itemID || s.Quantity >= inv.maxStackSize {
			continue
		}
		n := min(inv.maxStackSize-s.Quantity, remaining)
		s.Quantity += n
		remaining -= n
	}
	for remaining > 0 && len(inv.slots) < inv.maxSlots {
		n := min(inv.maxStackSize, remaining)
		inv.slots = append(inv.slots, Slot{ItemID: itemID, Quantity: n})
		remaining -= n
	}
	return remaining == 0
}

// RemoveItem takes qty units of itemID out of the inventory. It fails without
// changing anything if fewer than qty units are held. Emptied slots are removed.
func (inv *Inventory) RemoveItem(itemID string, qty int) bool {
	if qty <= 0 || inv.Quantity(itemID) < qty {
		return false
	}
	remaining := qty
	// Drain from the last matching slot so earlier stacks keep their order.
	for i := len(inv.slots) - 1; i >= 0 && remaining > 0; i-- {
		s := &inv.slots[i]
		if s.ItemID != itemID {
			continue
		}
		n := min(s.Quantity, remaining)
		s.Quantity -= n
		remaining -= n
	}
	kept := inv.slots[:0]
	for _, s := range inv.slots {
		if s.Quantity > 0 {
			kept = append(kept, s)
		}
	}
	inv.slots = kept
	return true
}

// HasRoom reports whether one more unit of itemID would fit.
func (inv *Inventory) HasRoom(itemID string) bool {
	for _, s := range inv.slots {
		if s.ItemID == itemID && s.Quantity < inv.maxStackSize {
			return true
		}
	}
	return len(inv.slots) < inv.maxSlots
}

// Restore replaces the contents with slots from a snapshot, dropping empty
// entries. Limits are not enforced so a saved inventory survives intact.
func (inv *Inventory) Restore(slots []Slot) {
	inv.slots = inv.slots[:0]
	for _, s := range slots {
		if s.ItemID != "" && s.Quantity > 0 {
			inv.slots = append(inv.slots, s)
		}
	}
}

// Fits reports whether qty units of itemID could be added in full.
func (inv *Inventory) Fits(itemID string, qty int) bool {
	if qty <= 0 {
		return true
	}
	free := 0
	for _, s := range inv.slots {
		if s.ItemID == itemID && s.Quantity < inv.maxStackSize {
			free += inv.maxStackSize - s.Quantity
		}
	}
	if open := inv.maxSlots - len(inv.slots); open > 0 {
		free += open * inv.maxStackSize
	}
	return free >= qty
}
