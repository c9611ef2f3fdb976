package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []LineItem {
	return []LineItem{
		NewLineItem("wash", "Hand wash", 1, priceOf("100", "123", "23"), NoDiscount(), ""),
		NewLineItem("wax", "Wax", 1, priceOf("50", "61.5", "11.5"), DiscountSpec{Type: DiscountAmount, Value: d("10")}, "hard wax"),
	}
}

func TestNewLineItem_ComputesFinalPrice(t *testing.T) {
	it := NewLineItem("wash", "Hand wash", 0, priceOf("100", "123", "23"), DiscountSpec{Type: DiscountPercentage, Value: d("20")}, "")

	assertPrice(t, priceOf("80.00", "98.40", "18.40"), it.FinalPrice)
	assert.Equal(t, 0, it.Quantity)
}

func TestAddLineItem(t *testing.T) {
	items := sampleItems()

	t.Run("appends at the end", func(t *testing.T) {
		extra := NewLineItem("custom-1", "Ceramic coating", 1, priceOf("500", "615", "115"), NoDiscount(), "")
		out, err := AddLineItem(items, extra)
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, "custom-1", out[2].ID)
		assert.Len(t, items, 2, "input must not be modified")
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		dup := NewLineItem("wash", "Another wash", 1, priceOf("10", "12.3", "2.3"), NoDiscount(), "")
		out, err := AddLineItem(items, dup)
		assert.ErrorIs(t, err, ErrDuplicateLineItem)
		assert.Len(t, out, 2)
	})
}

func TestRemoveLineItem(t *testing.T) {
	t.Run("removes every match", func(t *testing.T) {
		items := append(sampleItems(), LineItem{ID: "wash"})
		out, err := RemoveLineItem(items, "wash")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "wax", out[0].ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := RemoveLineItem(sampleItems(), "nope")
		assert.ErrorIs(t, err, ErrLineItemNotFound)
	})
}

func TestUpdateBasePrice(t *testing.T) {
	items := sampleItems()

	out, err := UpdateBasePrice(items, "wax", d("60"))
	require.NoError(t, err)

	assert.True(t, out[1].BasePrice.NetAmount.Equal(d("60")))
	assert.True(t, out[1].BasePrice.GrossAmount.Equal(d("73.8")))
	assertPrice(t, priceOf("50.00", "61.50", "11.50"), out[1].FinalPrice)
	assert.True(t, items[1].BasePrice.NetAmount.Equal(d("50")), "input must not be modified")
}

func TestUpdateDiscount(t *testing.T) {
	items := sampleItems()

	out, err := UpdateDiscountType(items, "wax", DiscountPercentage)
	require.NoError(t, err)
	assert.Equal(t, DiscountPercentage, out[1].Discount.Type)
	assertPrice(t, priceOf("45.00", "55.35", "10.35"), out[1].FinalPrice)

	out, err = UpdateDiscountValue(out, "wax", d("50"))
	require.NoError(t, err)
	assertPrice(t, priceOf("25.00", "30.75", "5.75"), out[1].FinalPrice)

	out, err = UpdateDiscountType(out, "wax", "SOMETHING_ELSE")
	require.NoError(t, err)
	assertPrice(t, priceOf("50.00", "61.50", "11.50"), out[1].FinalPrice)
}

func TestUpdateNote(t *testing.T) {
	out, err := UpdateNote(sampleItems(), "wash", "customer asked for extra rinse")
	require.NoError(t, err)
	assert.Equal(t, "customer asked for extra rinse", out[0].Note)

	_, err = UpdateNote(sampleItems(), "nope", "x")
	assert.ErrorIs(t, err, ErrLineItemNotFound)
}

func TestDiscountSpec_Discount(t *testing.T) {
	for _, spec := range []DiscountSpec{
		{Type: DiscountPercentage, Value: d("5")},
		{Type: DiscountAmount, Value: d("12.5")},
		{Type: DiscountFixedPrice, Value: d("99")},
		{Type: "LEGACY", Value: d("1")},
	} {
		got := spec.Discount()
		assert.Equal(t, spec.Type, got.Type())
		assert.True(t, spec.Value.Equal(got.Value()))
	}
	assert.Equal(t, DiscountAmount, ParseDiscountType(" amount "))
	assert.False(t, ParseDiscountType("legacy").Known())
}
