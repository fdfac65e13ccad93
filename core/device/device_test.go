package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/devicefinder/core/device"
)

func ptr(v float64) *float64 { return &v }

func TestNormalizePrices(t *testing.T) {
	t.Parallel()

	t.Run("missing current price is half the old one", func(t *testing.T) {
		t.Parallel()
		records := []device.Record{{Prices: []device.Price{
			{OldPrice: ptr(800), Currency: "USD"},
		}}}
		device.NormalizePrices(records)

		p := records[0].Prices[0]
		assert.Equal(t, 400.0, *p.Price)
		assert.Equal(t, 800.0, *p.OldPrice)
		assert.Equal(t, "USD", p.Currency)
	})

	t.Run("missing old price is double the current one", func(t *testing.T) {
		t.Parallel()
		records := []device.Record{{Prices: []device.Price{
			{Price: ptr(300), Currency: "USD"},
		}}}
		device.NormalizePrices(records)

		p := records[0].Prices[0]
		assert.Equal(t, 300.0, *p.Price)
		assert.Equal(t, 600.0, *p.OldPrice)
	})

	t.Run("fully unknown pair gets the catalog fallback", func(t *testing.T) {
		t.Parallel()
		records := []device.Record{{Prices: []device.Price{
			{Currency: "USD"},
		}}}
		device.NormalizePrices(records)

		p := records[0].Prices[0]
		assert.Equal(t, 200.0, *p.Price)
		assert.Equal(t, 400.0, *p.OldPrice)
	})

	t.Run("complete euro pair is nudged and relabeled", func(t *testing.T) {
		t.Parallel()
		records := []device.Record{{Prices: []device.Price{
			{Price: ptr(499.99), OldPrice: ptr(599.99), Currency: "EUR"},
		}}}
		device.NormalizePrices(records)

		p := records[0].Prices[0]
		assert.InDelta(t, 500.00, *p.Price, 1e-9)
		assert.InDelta(t, 600.00, *p.OldPrice, 1e-9)
		assert.Equal(t, "USD", p.Currency)
	})
}

func TestLowestPriceUSD(t *testing.T) {
	t.Parallel()

	rec := device.Record{Prices: []device.Price{
		{Price: ptr(999), Currency: "USD"},
		{Price: ptr(949), Currency: "USD"},
		{Price: ptr(100), Currency: "EUR"},
		{Currency: "USD"},
	}}
	assert.Equal(t, 949.0, rec.LowestPriceUSD())

	assert.Zero(t, device.Record{}.LowestPriceUSD())
}
