package cart

import (
	"testing"

	"bamboo/models"

	"github.com/stretchr/testify/assert"
)

func TestMergeItemAppendsNewEntry(t *testing.T) {
	cart := []models.CartItem{}

	cart = MergeItem(cart, "p1")

	assert.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].ProductID)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestMergeItemIncrementsExistingEntry(t *testing.T) {
	cart := []models.CartItem{{ProductID: "p1", Quantity: 1}}

	cart = MergeItem(cart, "p1")
	cart = MergeItem(cart, "p1")

	// still one entry per product, quantity bumped on every repeat add
	assert.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestMergeItemKeepsOtherEntriesUntouched(t *testing.T) {
	cart := []models.CartItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}

	cart = MergeItem(cart, "p2")

	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 2, cart[1].Quantity)
}

func TestRemoveItem(t *testing.T) {
	cart := []models.CartItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}

	cart = RemoveItem(cart, "p1")

	assert.Len(t, cart, 1)
	assert.Equal(t, "p2", cart[0].ProductID)
}

func TestRemoveItemMissingProductIsNoop(t *testing.T) {
	cart := []models.CartItem{{ProductID: "p1", Quantity: 2}}

	cart = RemoveItem(cart, "nope")

	assert.Len(t, cart, 1)
}
