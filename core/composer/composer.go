package composer

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/devicefinder/core/classifier"
	"github.com/dmitrymomot/devicefinder/core/device"
)

// Compose joins a record's identity fields and non-empty classification
// fragments into a single payload string, in fixed order: name, model,
// free-text info, fragments, target-user clause. Empty parts are dropped
// so the payload never contains double spaces or stray separators.
func Compose(rec device.Record, set classifier.Set) string {
	parts := make([]string, 0, len(set)+4)

	if rec.Name != "" {
		parts = append(parts, fmt.Sprintf("This device's name is %s.", rec.Name))
	}
	if rec.MPN != "" {
		parts = append(parts, fmt.Sprintf("Its model number is %s.", rec.MPN))
	}
	if info := strings.TrimSpace(rec.Info); info != "" {
		parts = append(parts, info)
	}
	for _, fragment := range set {
		if fragment = strings.TrimSpace(fragment); fragment != "" {
			parts = append(parts, fragment)
		}
	}
	if rec.TargetUser != "" {
		parts = append(parts, fmt.Sprintf("It would be a good fit for %s.", rec.TargetUser))
	}

	return strings.Join(parts, " ")
}
