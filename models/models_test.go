package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, ValidOrderStatus(s), s)
	}

	assert.False(t, ValidOrderStatus("shipped")) // case sensitive
	assert.False(t, ValidOrderStatus("Refunded"))
	assert.False(t, ValidOrderStatus(""))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleCitizen))
	assert.True(t, ValidRole(RoleDealer))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	user := User{UserID: "u1", Email: "a@b.c", Password: "hash"}

	data, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
}

func TestUserSummary(t *testing.T) {
	user := User{
		UserID: "u1",
		Name:   "Ana",
		Email:  "ana@example.com",
		Role:   RoleDealer,
		Phone:  "123",
		Cart:   []CartItem{{ProductID: "p1", Quantity: 2}},
	}

	s := user.Summary()
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, RoleDealer, s.Role)

	// summary carries no cart
	data, _ := json.Marshal(s)
	assert.NotContains(t, string(data), "cart")
}
