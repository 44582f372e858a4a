package catalog

// Slot is an equipment category. A slot holds at most one equipped item.
type Slot string

const (
	SlotHead      Slot = "head"
	SlotBody      Slot = "body"
	SlotLegs      Slot = "legs"
	SlotAccessory Slot = "accessory"
	SlotWeapon    Slot = "weapon"
)

// Slots lists equipment slots in display order.
var Slots = []Slot{SlotHead, SlotBody, SlotLegs, SlotAccessory, SlotWeapon}

func (s Slot) IsValid() bool {
	switch s {
	case SlotHead, SlotBody, SlotLegs, SlotAccessory, SlotWeapon:
		return true
	default:
		return false
	}
}

// Item is a static catalog entry. Slot is empty for consumables/misc.
type Item struct {
	ID       string
	Name     string
	Price    int
	Slot     Slot
	Category string
}

// Group is a shop section: a category of items sharing one equip slot
// (or none).
type Group struct {
	Category string
	Slot     Slot
	Items    []Item
}

var groups = []Group{
	{Category: "Head Gear", Slot: SlotHead, Items: []Item{
		{ID: "head_headband", Name: "Headband", Price: 300},
		{ID: "head_motorcycle_helmet", Name: "Motorcycle Helmet", Price: 750},
		{ID: "head_warrior_helmet", Name: "Warrior Helmet", Price: 1500},
		{ID: "head_sacred_mask", Name: "Sacred Mask", Price: 3000},
	}},
	{Category: "Body Gear", Slot: SlotBody, Items: []Item{
		{ID: "body_common_robe", Name: "Common Robe", Price: 1000},
		{ID: "body_army_vest", Name: "Army Vest", Price: 1500},
		{ID: "body_golden_chestplate", Name: "Golden Chestplate", Price: 3000},
		{ID: "body_sacred_armor", Name: "Sacred Armor", Price: 7500},
	}},
	{Category: "Leggings", Slot: SlotLegs, Items: []Item{
		{ID: "leg_baggy_jeans", Name: "Baggy Jeans", Price: 750},
		{ID: "leg_army_trousers", Name: "Army Trousers", Price: 1200},
		{ID: "leg_legendary_leggings", Name: "Legendary Leggings", Price: 3500},
		{ID: "leg_sacred_guard", Name: "Sacred Guard", Price: 5000},
	}},
	{Category: "Accessory", Slot: SlotAccessory, Items: []Item{
		{ID: "acc_ring_rage", Name: "Ring of Rage", Price: 1000},
		{ID: "acc_ring_courage", Name: "Ring of Courage", Price: 1000},
		{ID: "acc_ring_hope", Name: "Ring of Hope", Price: 1000},
		{ID: "acc_ring_love", Name: "Ring of Love", Price: 1000},
	}},
	{Category: "Weapon", Slot: SlotWeapon, Items: []Item{
		{ID: "wp_kitchen_knife", Name: "Common Kitchen Knife", Price: 200},
		{ID: "wp_sar21", Name: "SAR21", Price: 1000},
		{ID: "wp_royal_katana", Name: "Royal Katana", Price: 1500},
		{ID: "wp_deathreaper", Name: "Deathreaper", Price: 4000},
		{ID: "wp_soulstealer", Name: "Soulstealer", Price: 7500},
		{ID: "wp_sacred_blade", Name: "Sacred Blade", Price: 10000},
	}},
	{Category: "Items", Items: []Item{
		{ID: "itm_potion_heal", Name: "Potion of Healing", Price: 500},
		{ID: "itm_potion_weak", Name: "Potion of Weakness", Price: 1000},
		{ID: "itm_potion_power", Name: "Potion of Power", Price: 1200},
		{ID: "itm_potion_death", Name: "Potion of Death", Price: 1500},
	}},
	{Category: "Miscellaneous", Items: []Item{
		{ID: "misc_letter_key", Name: "Letter Key", Price: 100},
		{ID: "misc_adv_letter_key", Name: "Advanced Letter Key", Price: 500},
		{ID: "misc_wheel_key", Name: "Wheel of Fortune Key", Price: 750},
		{ID: "misc_adv_wheel_key", Name: "Advanced Wheel of Fortune Key", Price: 2000},
		{ID: "misc_e_key", Name: "E Key", Price: 10000},
	}},
}

// Wheel prizes are not sold in the shop but still need names and slots
// for the inventory and equipment screens.
var wheelExclusives = []Item{
	{ID: "wp_hellblade", Name: "Hellblade", Slot: SlotWeapon, Category: "Wheel Exclusive"},
	{ID: "itm_necklace_endurance", Name: "Necklace of Endurance", Slot: SlotAccessory, Category: "Wheel Exclusive"},
	{ID: "itm_revive_stone", Name: "Revive Stone", Category: "Wheel Exclusive"},
}

var registry = buildRegistry()

func buildRegistry() map[string]Item {
	r := make(map[string]Item)
	for _, g := range groups {
		for _, it := range g.Items {
			it.Slot = g.Slot
			it.Category = g.Category
			r[it.ID] = it
		}
	}
	for _, it := range wheelExclusives {
		r[it.ID] = it
	}
	return r
}

// Groups returns the shop sections in display order.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// Lookup returns the item definition for id.
func Lookup(id string) (Item, bool) {
	it, ok := registry[id]
	return it, ok
}

// Name returns the display name for id, or the raw id when unknown.
func Name(id string) string {
	if it, ok := registry[id]; ok {
		return it.Name
	}
	return id
}

// ForSlot returns all known items equippable into the given slot.
func ForSlot(slot Slot) []Item {
	var out []Item
	for _, g := range groups {
		if g.Slot != slot || g.Slot == "" {
			continue
		}
		for _, it := range g.Items {
			it.Slot = g.Slot
			it.Category = g.Category
			out = append(out, it)
		}
	}
	for _, it := range wheelExclusives {
		if it.Slot == slot && slot != "" {
			out = append(out, it)
		}
	}
	return out
}
