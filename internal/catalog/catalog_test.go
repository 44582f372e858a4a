package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPropagatesGroupSlotAndCategory(t *testing.T) {
	it, ok := Lookup("wp_sar21")
	require.True(t, ok)
	assert.Equal(t, "SAR21", it.Name)
	assert.Equal(t, 1000, it.Price)
	assert.Equal(t, SlotWeapon, it.Slot)
	assert.Equal(t, "Weapon", it.Category)

	potion, ok := Lookup("itm_potion_heal")
	require.True(t, ok)
	assert.Equal(t, Slot(""), potion.Slot)
	assert.Equal(t, 500, potion.Price)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("wp_excalibur")
	assert.False(t, ok)
	assert.Equal(t, "wp_excalibur", Name("wp_excalibur"))
}

func TestWheelExclusivesAreNamedButNotSold(t *testing.T) {
	it, ok := Lookup("wp_hellblade")
	require.True(t, ok)
	assert.Equal(t, "Hellblade", it.Name)
	assert.Equal(t, SlotWeapon, it.Slot)

	for _, g := range Groups() {
		for _, shopItem := range g.Items {
			assert.NotEqual(t, "wp_hellblade", shopItem.ID)
		}
	}
}

func TestForSlot(t *testing.T) {
	weapons := ForSlot(SlotWeapon)
	ids := make(map[string]bool, len(weapons))
	for _, it := range weapons {
		require.Equal(t, SlotWeapon, it.Slot)
		ids[it.ID] = true
	}
	assert.True(t, ids["wp_sacred_blade"])
	assert.True(t, ids["wp_hellblade"], "wheel exclusives are equippable")
	assert.False(t, ids["itm_potion_heal"])
}

func TestSlotValidity(t *testing.T) {
	for _, s := range Slots {
		assert.True(t, s.IsValid(), "slot %s", s)
	}
	assert.False(t, Slot("tail").IsValid())
	assert.False(t, Slot("").IsValid())
}

func TestEveryShopItemHasPositivePrice(t *testing.T) {
	for _, g := range Groups() {
		require.NotEmpty(t, g.Items, "group %s", g.Category)
		for _, it := range g.Items {
			assert.Greaterf(t, it.Price, 0, "item %s", it.ID)
		}
	}
}
