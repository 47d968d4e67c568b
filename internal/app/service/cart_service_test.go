package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewrain/brewrain-backend/internal/app/repository"
	"github.com/brewrain/brewrain-backend/internal/catalog"
)

func setupCartServiceTest(t *testing.T) (CartService, repository.CartRepository) {
	t.Helper()
	repo := repository.NewCartRepository()
	return NewCartService(repo, catalog.Default()), repo
}

func TestCartService_AddLine_Defaults(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	line, err := cartService.AddLine("s1", AddLineInput{ProductID: "matcha"})
	require.NoError(t, err)

	assert.Equal(t, "Matcha Latte", line.Name)
	assert.Equal(t, "250", line.SizeID)
	assert.Equal(t, "Reguler", line.SizeLabel)
	assert.Equal(t, "Normal", line.IceLevel)
	assert.Equal(t, "75%", line.SugarLevel)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, int64(15000), line.UnitPrice)
	assert.Empty(t, line.Notes)
}

func TestCartService_AddLine_Explicit(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	line, err := cartService.AddLine("s1", AddLineInput{
		ProductID:  "thai",
		SizeID:     "250",
		Quantity:   3,
		IceLevel:   "Normal",
		SugarLevel: "50%",
		Notes:      "kurangi manis",
	})
	require.NoError(t, err)

	assert.Equal(t, "Thai Tea", line.Name)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, "50%", line.SugarLevel)
	assert.Equal(t, "kurangi manis", line.Notes)
	assert.Equal(t, int64(45000), line.Subtotal())
}

func TestCartService_AddLine_ValidationErrors(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	_, err := cartService.AddLine("s1", AddLineInput{ProductID: "espresso"})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = cartService.AddLine("s1", AddLineInput{ProductID: "matcha", SizeID: "700"})
	assert.ErrorIs(t, err, ErrSizeNotFound)

	_, err = cartService.AddLine("s1", AddLineInput{ProductID: "matcha", IceLevel: "Dingin Banget"})
	assert.ErrorIs(t, err, ErrInvalidIceLevel)

	_, err = cartService.AddLine("s1", AddLineInput{ProductID: "matcha", SugarLevel: "110%"})
	assert.ErrorIs(t, err, ErrInvalidSugarLevel)
}

func TestCartService_AddLine_ZeroQuantityDefaultsToOne(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	line, err := cartService.AddLine("s1", AddLineInput{ProductID: "matcha", Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}

func TestCartService_AddLine_SameProductTwiceGetsDistinctLines(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	first, err := cartService.AddLine("s1", AddLineInput{ProductID: "matcha", SugarLevel: "100%"})
	require.NoError(t, err)
	second, err := cartService.AddLine("s1", AddLineInput{ProductID: "matcha", SugarLevel: "0%"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	cart := cartService.GetCart("s1")
	require.Equal(t, 2, cart.Len())
	// Newest addition is listed first.
	assert.Equal(t, second.ID, cart.Lines[0].ID)

	// Each line stays independently removable.
	require.NoError(t, cartService.RemoveLine("s1", first.ID))
	cart = cartService.GetCart("s1")
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, second.ID, cart.Lines[0].ID)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	line, err := cartService.AddLine("s1", AddLineInput{ProductID: "matcha"})
	require.NoError(t, err)

	t.Run("increment from one goes to two", func(t *testing.T) {
		updated, err := cartService.UpdateQuantity("s1", line.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Quantity)
	})

	t.Run("decrement below one clamps to one", func(t *testing.T) {
		updated, err := cartService.UpdateQuantity("s1", line.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Quantity)
	})

	t.Run("unknown line", func(t *testing.T) {
		_, err := cartService.UpdateQuantity("s1", "matcha-0", 2)
		assert.ErrorIs(t, err, ErrCartLineNotFound)
	})
}

func TestCartService_RemoveLine_Unknown(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	err := cartService.RemoveLine("s1", "matcha-0")
	assert.ErrorIs(t, err, ErrCartLineNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	_, err := cartService.AddLine("s1", AddLineInput{ProductID: "matcha"})
	require.NoError(t, err)
	_, err = cartService.AddLine("s1", AddLineInput{ProductID: "thai"})
	require.NoError(t, err)

	cartService.ClearCart("s1")
	assert.Equal(t, 0, cartService.GetCart("s1").Len())
}

func TestCartService_PriceFixedAtAddTime(t *testing.T) {
	repo := repository.NewCartRepository()
	cat := catalog.Default()
	cartService := NewCartService(repo, cat)

	line, err := cartService.AddLine("s1", AddLineInput{ProductID: "matcha"})
	require.NoError(t, err)

	// A later catalog change must never reprice existing lines.
	cat.Products[0].BasePrice = 99000

	cart := cartService.GetCart("s1")
	got, ok := cart.Find(line.ID)
	require.True(t, ok)
	assert.Equal(t, int64(15000), got.UnitPrice)
}
