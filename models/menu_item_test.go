package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	item, err := NewMenuItem("Coxinha", 5.00, "Salgados")
	require.NoError(t, err)
	assert.Equal(t, "Coxinha", item.Name)
	assert.Equal(t, 5.00, item.Price)
	assert.Equal(t, "Salgados", item.Category)
	assert.True(t, item.IsActive)
}

func TestNewMenuItem_DefaultsCategory(t *testing.T) {
	item, err := NewMenuItem("Suco", 4.00, "  ")
	require.NoError(t, err)
	assert.Equal(t, "Geral", item.Category)
}

func TestNewMenuItem_Validation(t *testing.T) {
	var validationErr *ValidationError

	_, err := NewMenuItem("", 5.00, "Salgados")
	require.ErrorAs(t, err, &validationErr)

	_, err = NewMenuItem("Coxinha", 0, "Salgados")
	require.ErrorAs(t, err, &validationErr)

	_, err = NewMenuItem("Coxinha", -1.50, "Salgados")
	require.ErrorAs(t, err, &validationErr)
}

func TestNewCustomer_Validation(t *testing.T) {
	var validationErr *ValidationError
	_, err := NewCustomer("  ", "")
	require.ErrorAs(t, err, &validationErr)

	customer, err := NewCustomer(" João ", " 11999990000 ")
	require.NoError(t, err)
	assert.Equal(t, "João", customer.Name)
	assert.Equal(t, "11999990000", customer.Phone)
}

func TestWalkInCustomer(t *testing.T) {
	walkIn := WalkInCustomer()
	assert.Equal(t, WalkInCustomerID, walkIn.ID)
	assert.True(t, walkIn.IsWalkIn())
	assert.False(t, Customer{ID: "c-1"}.IsWalkIn())
}
