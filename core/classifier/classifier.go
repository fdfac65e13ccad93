package classifier

import (
	"github.com/dmitrymomot/devicefinder/core/device"
)

// Func classifies one category's raw attribute map into a text fragment.
// Implementations must be pure and must return "" when the attributes hold
// no usable signal; they never fail.
type Func func(attrs map[string]any) string

// Set holds one fragment per declared category, in registry order.
// A missing or insufficient category is represented by "".
type Set []string

// Declared category names. The order of this list is the canonical
// fragment order of every Set produced by a Registry.
const (
	CategoryAudio        = "audio"
	CategoryCamera       = "camera"
	CategoryVideo        = "video"
	CategoryDesign       = "design"
	CategoryMemory       = "memory"
	CategoryBattery      = "battery"
	CategoryDisplay      = "display"
	CategoryNetwork      = "network"
	CategoryStorage      = "storage"
	CategoryKeyboard     = "keyboard"
	CategorySecurity     = "security"
	CategorySoftware     = "software"
	CategoryMeasurements = "measurements"
	CategoryPorts        = "ports"
	CategoryCPU          = "cpu"
	CategoryPrice        = "price"
)

// Registry maps category names to classification functions and fixes the
// order fragments appear in.
type Registry struct {
	order    []string
	handlers map[string]Func
}

// NewRegistry returns a registry pre-populated with the default handler
// for every declared category.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Func)}
	r.Register(CategoryAudio, classifyAudio)
	r.Register(CategoryCamera, classifyCamera)
	r.Register(CategoryVideo, classifyVideo)
	r.Register(CategoryDesign, classifyDesign)
	r.Register(CategoryMemory, classifyMemory)
	r.Register(CategoryBattery, classifyBattery)
	r.Register(CategoryDisplay, classifyDisplay)
	r.Register(CategoryNetwork, classifyNetwork)
	r.Register(CategoryStorage, classifyStorage)
	r.Register(CategoryKeyboard, classifyKeyboard)
	r.Register(CategorySecurity, classifySecurity)
	r.Register(CategorySoftware, classifySoftware)
	r.Register(CategoryMeasurements, classifyMeasurements)
	r.Register(CategoryPorts, classifyPorts)
	r.Register(CategoryCPU, classifyCPU)
	r.Register(CategoryPrice, classifyPrice)
	return r
}

// Register adds or replaces the handler for a category. New categories are
// appended to the declared order.
func (r *Registry) Register(name string, fn Func) {
	if _, exists := r.handlers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.handlers[name] = fn
}

// Categories returns the declared category order.
func (r *Registry) Categories() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Classify produces a record's fragment set. The result always has exactly
// one entry per declared category; categories absent from the record map
// to "".
func (r *Registry) Classify(rec device.Record) Set {
	set := make(Set, 0, len(r.order))
	for _, name := range r.order {
		attrs := rec.Attrs[name]
		if name == CategoryPrice && len(attrs) == 0 {
			// Price lives on the record's offers, not in the nested
			// attribute maps.
			if usd := rec.LowestPriceUSD(); usd > 0 {
				attrs = map[string]any{"price_usd": usd}
			}
		}
		if len(attrs) == 0 {
			set = append(set, "")
			continue
		}
		set = append(set, r.handlers[name](attrs))
	}
	return set
}
