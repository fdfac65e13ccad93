package device

// Record is a single device as stored in the primary record store.
// Attrs maps a category name (battery, display, ...) to that category's
// raw attribute map; values are whatever the acquisition source produced,
// so numeric attributes may arrive as float64 or int after JSON decoding.
type Record struct {
	ID          int                       `json:"id" bson:"_id"`
	Name        string                    `json:"name" bson:"name"`
	MPN         string                    `json:"mpn" bson:"mpn"`
	Info        string                    `json:"info,omitempty" bson:"info,omitempty"`
	Description string                    `json:"description,omitempty" bson:"description,omitempty"`
	TargetUser  string                    `json:"target_user,omitempty" bson:"target_user,omitempty"`
	Prices      []Price                   `json:"prices,omitempty" bson:"prices,omitempty"`
	Attrs       map[string]map[string]any `json:"data,omitempty" bson:"data,omitempty"`
}

// Price is one offer for a device. Price and OldPrice are pointers because
// the acquisition source emits null for unknown values.
type Price struct {
	Price    *float64 `json:"price" bson:"price"`
	OldPrice *float64 `json:"old_price" bson:"old_price"`
	Currency string   `json:"currency" bson:"currency"`
	URL      string   `json:"url" bson:"url"`
}

// LowestPriceUSD returns the lowest known USD price for the record,
// or 0 when no price is known.
func (r Record) LowestPriceUSD() float64 {
	var lowest float64
	for _, p := range r.Prices {
		if p.Price == nil || p.Currency != "USD" {
			continue
		}
		if lowest == 0 || *p.Price < lowest {
			lowest = *p.Price
		}
	}
	return lowest
}

// NormalizePrices fills gaps the acquisition source leaves in price pairs
// and coerces everything to USD so downstream classification has one
// currency to bucket on. The heuristics mirror the source data: a missing
// current price is estimated as half the old price, a missing old price as
// double the current one, and a fully unknown pair gets the catalog
// fallback of 200/400.
func NormalizePrices(records []Record) {
	for ri := range records {
		for pi := range records[ri].Prices {
			p := &records[ri].Prices[pi]
			switch {
			case p.Price != nil && p.OldPrice != nil:
				if p.Currency == "EUR" {
					*p.Price += 0.01
					*p.OldPrice += 0.01
				}
			case p.Price == nil && p.OldPrice != nil:
				v := *p.OldPrice / 2
				p.Price = &v
			case p.Price != nil && p.OldPrice == nil:
				v := *p.Price * 2
				p.OldPrice = &v
			default:
				price, old := 200.0, 400.0
				p.Price, p.OldPrice = &price, &old
			}
			p.Currency = "USD"
		}
	}
}
