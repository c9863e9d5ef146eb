package cart

import (
	"math"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddMergesByID(t *testing.T) {
	var c Cart
	c.Add(1, "Veg Pizza", 299, 2)
	c.Add(1, "Veg Pizza", 299, 3)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestCart_AddKeepsInsertionOrder(t *testing.T) {
	var c Cart
	c.Add(3, "Garlic Bread", 99, 1)
	c.Add(1, "Veg Pizza", 299, 1)
	c.Add(2, "Coke", 49, 1)
	c.Add(3, "Garlic Bread", 99, 1)

	var ids []int64
	for _, l := range c.Lines() {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestCart_AddNormalizesInput(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		quantity     int
		wantPrice    float64
		wantQuantity int
	}{
		{"zero quantity", 10, 0, 10, 1},
		{"negative quantity", 10, -4, 10, 1},
		{"negative price", -5, 2, 0, 2},
		{"nan price", math.NaN(), 1, 0, 1},
		{"infinite price", math.Inf(1), 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			c.Add(1, "Item", tt.price, tt.quantity)

			lines := c.Lines()
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantPrice, lines[0].Price)
			assert.Equal(t, tt.wantQuantity, lines[0].Quantity)
		})
	}
}

func TestCart_AddRejectsNonPositiveID(t *testing.T) {
	c := New(models.CartLine{ID: 1, Name: "Veg Pizza", Price: 299, Quantity: 1})

	for _, id := range []int64{0, -3, math.MinInt64} {
		assert.False(t, c.Add(id, "Ghost", 10, 1), "id %d", id)
	}
	assert.True(t, c.Add(2, "Coke", 49, 1))

	data, err := Encode(c)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err, "every line the cart accepts must survive a reload")
	assert.Equal(t, c.Lines(), decoded.Lines())
	assert.Equal(t, 2, decoded.Len())
}

func TestCart_QuantityCeiling(t *testing.T) {
	tests := []struct {
		name string
		adds []int
		want int
	}{
		{"at ceiling", []int{MaxQuantity}, MaxQuantity},
		{"above ceiling", []int{MaxQuantity + 1}, MaxQuantity},
		{"merge saturates", []int{60, 60}, MaxQuantity},
		{"max int", []int{math.MaxInt}, MaxQuantity},
		{"max int then one", []int{math.MaxInt, 1}, MaxQuantity},
		{"one then max int", []int{1, math.MaxInt}, MaxQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			for _, q := range tt.adds {
				require.True(t, c.Add(1, "Veg Pizza", 100, q))
			}

			assert.Equal(t, tt.want, c.Count())
			assert.Equal(t, float64(tt.want)*100, c.Total())
		})
	}
}

func TestCart_AddKeepsFirstSnapshot(t *testing.T) {
	var c Cart
	c.Add(1, "Veg Pizza", 299, 1)
	c.Add(1, "Renamed", 999, 1)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Veg Pizza", lines[0].Name)
	assert.Equal(t, 299.0, lines[0].Price)
}

func TestCart_Remove(t *testing.T) {
	c := New(
		models.CartLine{ID: 1, Name: "Veg Pizza", Price: 299, Quantity: 1},
		models.CartLine{ID: 2, Name: "Coke", Price: 49, Quantity: 2},
		models.CartLine{ID: 3, Name: "Brownie", Price: 120, Quantity: 1},
	)

	before := c.Lines()
	c.Remove(42)
	assert.Equal(t, before, c.Lines(), "removing an absent id must not change the cart")

	c.Remove(2)
	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, int64(3), lines[1].ID)

	// the earlier copy is not affected by the removal
	assert.Len(t, before, 3)
	assert.Equal(t, int64(2), before[1].ID)
}

func TestCart_SetQuantity(t *testing.T) {
	c := New(models.CartLine{ID: 1, Name: "Veg Pizza", Price: 299, Quantity: 1})

	assert.True(t, c.SetQuantity(1, 4))
	assert.Equal(t, 4, c.Count())

	assert.True(t, c.SetQuantity(1, 0))
	assert.Equal(t, 1, c.Count())

	assert.True(t, c.SetQuantity(1, math.MaxInt))
	assert.Equal(t, MaxQuantity, c.Count())

	assert.False(t, c.SetQuantity(9, 3))
	assert.Equal(t, 1, c.Len())
}

func TestCart_TotalAndCount(t *testing.T) {
	var c Cart
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, 0, c.Count())

	c.Add(1, "Veg Pizza", 100, 2)
	c.Add(2, "Coke", 50, 1)

	assert.Equal(t, 250.0, c.Total())
	assert.Equal(t, 3, c.Count())

	summary := c.Summary()
	assert.Equal(t, 250.0, summary.Total)
	assert.Equal(t, 3, summary.Count)
	assert.Len(t, summary.Lines, 2)
}

func TestCart_Clear(t *testing.T) {
	c := New(models.CartLine{ID: 1, Name: "Veg Pizza", Price: 299, Quantity: 1})
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Lines())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	c := New(
		models.CartLine{ID: 2, Name: "Coke", Price: 49, Quantity: 3},
		models.CartLine{ID: 1, Name: "Veg Pizza", Price: 299, Quantity: 1},
	)

	data, err := Encode(c)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, c.Lines(), decoded.Lines())
}

func TestEncode_EmptyCart(t *testing.T) {
	data, err := Encode(Cart{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestDecode_MergesDuplicates(t *testing.T) {
	c, err := Decode([]byte(`[
		{"id":1,"name":"Veg Pizza","price":299,"quantity":1},
		{"id":1,"name":"Veg Pizza","price":299,"quantity":2}
	]`))
	require.NoError(t, err)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestDecode_CapsQuantity(t *testing.T) {
	c, err := Decode([]byte(`[
		{"id":1,"name":"Veg Pizza","price":299,"quantity":500},
		{"id":2,"name":"Coke","price":49,"quantity":70},
		{"id":2,"name":"Coke","price":49,"quantity":70}
	]`))
	require.NoError(t, err)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, MaxQuantity, lines[0].Quantity)
	assert.Equal(t, MaxQuantity, lines[1].Quantity)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{cart`},
		{"object instead of array", `{"id":1}`},
		{"zero quantity", `[{"id":1,"name":"A","price":1,"quantity":0}]`},
		{"negative price", `[{"id":1,"name":"A","price":-1,"quantity":1}]`},
		{"missing id", `[{"name":"A","price":1,"quantity":1}]`},
		{"negative id", `[{"id":-2,"name":"A","price":1,"quantity":1}]`},
		{"wrong type", `[{"id":"one","name":"A","price":1,"quantity":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformedSnapshot)
		})
	}
}
