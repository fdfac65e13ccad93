package classifier_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicefinder/core/classifier"
	"github.com/dmitrymomot/devicefinder/core/device"
)

func usd(v float64) device.Price {
	return device.Price{Price: &v, Currency: "USD"}
}

func TestClassifySetShape(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()

	records := []device.Record{
		{}, // no attributes at all
		{Attrs: map[string]map[string]any{
			"battery": {"capacity__wh": 80.0},
		}},
		{Attrs: map[string]map[string]any{
			"battery": {},
			"display": {"brightness__cdm": 350.0},
			"unknown": {"ignored": true},
		}},
	}

	for _, rec := range records {
		set := reg.Classify(rec)
		require.Len(t, set, len(reg.Categories()))
	}

	// A category with an empty attribute map yields the empty fragment.
	set := reg.Classify(records[2])
	idx := indexOf(t, reg.Categories(), classifier.CategoryBattery)
	assert.Empty(t, set[idx])
}

func TestClassifyIsPure(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()

	rec := device.Record{
		Prices: []device.Price{usd(1250)},
		Attrs: map[string]map[string]any{
			"battery": {"capacity__wh": 120.0, "technology": "Li-Po"},
			"cpu":     {"number_of_cores": 8.0, "clock_speed__ghz": 3.2},
			"display": {"brightness__cdm": 500.0, "max_refresh_rate__hz": 120.0},
		},
	}

	first := reg.Classify(rec)
	second := reg.Classify(rec)
	assert.Equal(t, first, second)
}

func TestBatteryBoundaries(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()
	idx := indexOf(t, reg.Categories(), classifier.CategoryBattery)

	tests := []struct {
		name     string
		capacity float64
		want     string
	}{
		{"exactly on the average floor", 50, "average"},
		{"just below the average floor", 49.999, "small"},
		{"exactly on the large floor", 100, "large"},
		{"just below the large floor", 99.999, "average"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := device.Record{Attrs: map[string]map[string]any{
				"battery": {"capacity__wh": tt.capacity},
			}}
			fragment := reg.Classify(rec)[idx]
			assert.Contains(t, fragment, tt.want+" battery capacity")
		})
	}
}

func TestBatteryScenario(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()
	idx := indexOf(t, reg.Categories(), classifier.CategoryBattery)

	rec := device.Record{Attrs: map[string]map[string]any{
		"battery": {
			"capacity__wh":     120.0,
			"technology":       "Li-Po",
			"battery_life__h":  12.0,
			"charging_time__h": 1.0,
		},
	}}

	fragment := reg.Classify(rec)[idx]
	assert.Contains(t, fragment, "large battery capacity")
	assert.Contains(t, fragment, "Li-Po technology")
	assert.Contains(t, fragment, "long life")
	assert.Contains(t, fragment, "charges quickly")
	assert.NotContains(t, fragment, "  ", "no double spaces")
}

func TestDisplayBuckets(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()
	idx := indexOf(t, reg.Categories(), classifier.CategoryDisplay)

	tests := []struct {
		brightness float64
		refresh    float64
		want       []string
	}{
		{299, 59, []string{"dim display", "low refresh rate"}},
		{300, 60, []string{"bright display", "high refresh rate"}},
		{500, 120, []string{"very bright display", "very high refresh rate"}},
	}

	for _, tt := range tests {
		rec := device.Record{Attrs: map[string]map[string]any{
			"display": {
				"brightness__cdm":      tt.brightness,
				"max_refresh_rate__hz": tt.refresh,
			},
		}}
		fragment := reg.Classify(rec)[idx]
		for _, want := range tt.want {
			assert.Contains(t, fragment, want)
		}
	}
}

func TestCPUCoreBuckets(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()
	idx := indexOf(t, reg.Categories(), classifier.CategoryCPU)

	tests := []struct {
		cores float64
		want  string
	}{
		{2, "a few cores"},
		{4, "several cores"},
		{7, "several cores"},
		{8, "many cores"},
	}

	for _, tt := range tests {
		rec := device.Record{Attrs: map[string]map[string]any{
			"cpu": {"number_of_cores": tt.cores},
		}}
		assert.Contains(t, reg.Classify(rec)[idx], tt.want)
	}
}

func TestPriceBuckets(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()
	idx := indexOf(t, reg.Categories(), classifier.CategoryPrice)

	tests := []struct {
		price float64
		want  string
	}{
		{199, "affordable"},
		{500, "moderately priced"},
		{999.99, "moderately priced"},
		{1000, "expensive"},
	}

	for _, tt := range tests {
		rec := device.Record{Prices: []device.Price{usd(tt.price)}}
		assert.Contains(t, reg.Classify(rec)[idx], tt.want)
	}

	// No price information at all yields no fragment.
	assert.Empty(t, reg.Classify(device.Record{})[idx])
}

func TestCameraResolutionBuckets(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()
	idx := indexOf(t, reg.Categories(), classifier.CategoryCamera)

	tests := []struct {
		mp   float64
		want string
	}{
		{0, "Does not have a camera."},
		{5, "low resolution"},
		{12, "average resolution"},
		{12.5, "high resolution"},
	}

	for _, tt := range tests {
		rec := device.Record{Attrs: map[string]map[string]any{
			"camera": {"megapixels": tt.mp},
		}}
		assert.Contains(t, reg.Classify(rec)[idx], tt.want)
	}
}

func TestMeasurementsSentence(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()
	idx := indexOf(t, reg.Categories(), classifier.CategoryMeasurements)

	rec := device.Record{Attrs: map[string]map[string]any{
		"measurements": {
			"height_front__mm": 9.0,
			"height_back__mm":  14.0,
			"length__mm":       290.0,
			"width__mm":        190.0,
			"weight__g":        950.0,
		},
	}}

	fragment := reg.Classify(rec)[idx]
	assert.Equal(t, "Is thin and short with a narrow design, and it's light.", fragment)
}

func TestIntegerAttributesAreCoerced(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()
	idx := indexOf(t, reg.Categories(), classifier.CategoryBattery)

	// BSON decoding can hand handlers int32/int64 instead of float64.
	rec := device.Record{Attrs: map[string]map[string]any{
		"battery": {"capacity__wh": int32(120)},
	}}
	assert.Contains(t, reg.Classify(rec)[idx], "large battery capacity")
}

func TestRegisterCustomCategory(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()
	base := len(reg.Categories())

	reg.Register("cooling", func(attrs map[string]any) string {
		if fans, _ := attrs["number_of_fans"].(float64); fans > 1 {
			return "Has multiple cooling fans."
		}
		return ""
	})

	require.Len(t, reg.Categories(), base+1)
	assert.Equal(t, "cooling", reg.Categories()[base])

	rec := device.Record{Attrs: map[string]map[string]any{
		"cooling": {"number_of_fans": 2.0},
	}}
	set := reg.Classify(rec)
	require.Len(t, set, base+1)
	assert.Equal(t, "Has multiple cooling fans.", set[base])
}

func TestNoFragmentHasStrayWhitespace(t *testing.T) {
	t.Parallel()
	reg := classifier.NewRegistry()

	rec := device.Record{
		Prices: []device.Price{usd(700)},
		Attrs: map[string]map[string]any{
			"audio":    {"number_of_speakers": 2.0, "audiochip": "Intel"},
			"battery":  {"capacity__wh": 56.0, "charging_time__h": 2.0},
			"keyboard": {"has_light": true, "has_touchpad": true},
			"network":  {"has_bluetooth": true, "wifi_standards": "Wi-Fi 6"},
			"ports":    {"has_thunderbolt": true, "has_vga_port": true},
		},
	}

	for i, fragment := range reg.Classify(rec) {
		assert.Equal(t, strings.TrimSpace(fragment), fragment, "fragment %d not trimmed", i)
		assert.NotContains(t, fragment, "  ", "fragment %d has double spaces", i)
	}
}

func indexOf(t *testing.T, categories []string, name string) int {
	t.Helper()
	for i, c := range categories {
		if c == name {
			return i
		}
	}
	t.Fatalf("category %q not declared", name)
	return -1
}
