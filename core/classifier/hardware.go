package classifier

import "fmt"

// Bucket cutoffs are inclusive on the lower bound: a battery of exactly
// 50 Wh is "average", not "small".

func classifyBattery(attrs map[string]any) string {
	capacity := num(attrs, "capacity__wh")
	technology := str(attrs, "technology")
	life := num(attrs, "battery_life__h")
	charging := num(attrs, "charging_time__h")

	var capMsg string
	switch {
	case capacity == 0:
	case capacity < 50:
		capMsg = "Has a small battery capacity."
	case capacity < 100:
		capMsg = "Has an average battery capacity."
	default:
		capMsg = "Has a large battery capacity."
	}

	var techMsg string
	if technology != "" {
		techMsg = fmt.Sprintf("The battery uses %s technology.", technology)
	}

	var lifeMsg string
	switch {
	case life == 0:
	case life < 5:
		lifeMsg = "The battery has a short life."
	case life < 10:
		lifeMsg = "The battery has an average life."
	default:
		lifeMsg = "The battery has a long life."
	}

	var chargeMsg string
	switch {
	case charging == 0:
	case charging < 2:
		chargeMsg = "The battery charges quickly."
	case charging < 4:
		chargeMsg = "The battery has an average charging time."
	default:
		chargeMsg = "The battery takes a long time to charge."
	}

	return sentence(capMsg, techMsg, lifeMsg, chargeMsg)
}

func classifyCPU(attrs map[string]any) string {
	generation := str(attrs, "generation")
	cores := num(attrs, "number_of_cores")
	clock := num(attrs, "clock_speed__ghz")
	turbo := num(attrs, "max_clock_speed__ghz")

	var clauses []string
	if generation != "" {
		clauses = append(clauses, fmt.Sprintf("a generation %s CPU", generation))
	}
	switch {
	case cores == 0:
	case cores < 4:
		clauses = append(clauses, "with a few cores")
	case cores < 8:
		clauses = append(clauses, "with several cores")
	default:
		clauses = append(clauses, "with many cores")
	}
	if clock > 0 {
		clauses = append(clauses, fmt.Sprintf("at %g GHz", clock))
	}
	switch {
	case turbo == 0:
	case turbo < 3:
		clauses = append(clauses, "with low turbo boost")
	case turbo < 4:
		clauses = append(clauses, "with average turbo boost")
	default:
		clauses = append(clauses, "with high turbo boost")
	}

	if len(clauses) == 0 {
		return ""
	}
	return "Has " + sentence(clauses...) + "."
}

func classifyMemory(attrs map[string]any) string {
	var parts []string
	if t := str(attrs, "type"); t != "" {
		parts = append(parts, t+" memory")
	}
	if maxRAM := num(attrs, "max_ram__gb"); maxRAM > 0 {
		parts = append(parts, fmt.Sprintf("upgradable to %gGB", maxRAM))
	}
	if ram := num(attrs, "ram__gb"); ram > 0 {
		parts = append(parts, fmt.Sprintf("%gGB installed", ram))
	}
	if flag(attrs, "is_memory_expandable") {
		parts = append(parts, "expandable memory")
	}
	if slots := num(attrs, "number_of_slots"); slots > 0 {
		parts = append(parts, fmt.Sprintf("%g memory slots", slots))
	}
	if cache := num(attrs, "cache_memory__mb"); cache > 0 {
		parts = append(parts, fmt.Sprintf("%gMB cache memory", cache))
	}
	if clock := num(attrs, "clock_speed__ghz"); clock > 0 {
		parts = append(parts, fmt.Sprintf("%gGHz clock speed", clock))
	}
	if ff := str(attrs, "form_factor"); ff != "" {
		parts = append(parts, ff+" form factor")
	}

	if len(parts) == 0 {
		return ""
	}
	return "Has " + listAnd(parts) + "."
}

func classifyStorage(attrs map[string]any) string {
	var clauses []string

	storageType := str(attrs, "type")
	capacity := num(attrs, "capacity__gb")
	if storageType != "" && capacity > 0 {
		clauses = append(clauses, fmt.Sprintf("with a %g GB %s drive", capacity, storageType))
	}
	if flag(attrs, "is_storage_expandable") {
		clauses = append(clauses, "with expandable storage")
	}
	if flag(attrs, "has_nvme") {
		clauses = append(clauses, "with NVMe storage technology")
	}
	if flag(attrs, "hard_drive_accelerator") {
		clauses = append(clauses, "with a hard drive accelerator")
	}
	if flag(attrs, "has_integrated_memory_card_reader") {
		clauses = append(clauses, "with an integrated memory card reader")
		if cards := str(attrs, "compatible_memory_cards"); cards != "" {
			clauses = append(clauses, fmt.Sprintf("that supports %s memory cards", cards))
		}
	}
	if ssds := num(attrs, "number_of_ssd"); ssds > 0 {
		ssdCap := num(attrs, "ssd_capacity__gb")
		ssdIfs := str(attrs, "ssd_interfaces")
		if ssdCap > 0 && ssdIfs != "" {
			clauses = append(clauses, fmt.Sprintf("with %g SSD(s) (%g GB, %s interfaces)", ssds, ssdCap, ssdIfs))
		}
	}

	if len(clauses) == 0 {
		return ""
	}
	return "Comes " + sentence(clauses...) + "."
}

func classifyVideo(attrs map[string]any) string {
	var clauses []string

	if flag(attrs, "has_4k_support") {
		clauses = append(clauses, "with 4K video support")
	}
	if flag(attrs, "has_6k_support") {
		clauses = append(clauses, "with 6K video support")
	}
	if flag(attrs, "has_cuda") {
		clauses = append(clauses, "with NVIDIA CUDA technology")
	}

	hasCard := false
	if flag(attrs, "has_internal_video_card") {
		if t := str(attrs, "internal_video_card_type"); t != "" {
			clauses = append(clauses, fmt.Sprintf("with an internal %s video card", t))
		} else {
			clauses = append(clauses, "with an internal video card")
		}
		hasCard = true
	}
	if flag(attrs, "has_separate_video_card") {
		if t := str(attrs, "separate_video_card_type"); t != "" {
			clauses = append(clauses, fmt.Sprintf("with a separate %s video card", t))
		}
		hasCard = true
	}
	if hasCard {
		if mem := num(attrs, "memory__gb"); mem > 0 {
			clauses = append(clauses, fmt.Sprintf("with %gGB video memory", mem))
			if mt := str(attrs, "memory_type"); mt != "" {
				clauses = append(clauses, fmt.Sprintf("of the %s type", mt))
			}
			if bw := num(attrs, "max_memory_bandwidth__gbs"); bw > 0 {
				clauses = append(clauses, fmt.Sprintf("with max memory bandwidth of %gGB/s", bw))
			}
		}
	}
	if flag(attrs, "has_nvidia_max_q") {
		clauses = append(clauses, "with NVIDIA Max-Q technology")
	}
	if m := str(attrs, "manufacturer"); m != "" {
		clauses = append(clauses, "manufactured by "+m)
	}

	if len(clauses) == 0 {
		return ""
	}
	return "Comes " + sentence(clauses...) + "."
}

func classifyDisplay(attrs map[string]any) string {
	var clauses []string

	switch brightness := num(attrs, "brightness__cdm"); {
	case brightness == 0:
	case brightness < 300:
		clauses = append(clauses, "a dim display")
	case brightness < 500:
		clauses = append(clauses, "a bright display")
	default:
		clauses = append(clauses, "a very bright display")
	}

	if flag(attrs, "has_anti_reflection") {
		clauses = append(clauses, "with anti-reflection technology")
	}
	if flag(attrs, "has_dual_screen") {
		clauses = append(clauses, "with a dual screen")
	}
	if flag(attrs, "has_touchscreen") {
		clauses = append(clauses, "with a touchscreen")
	}
	switch str(attrs, "hd_type") {
	case "OLED":
		clauses = append(clauses, "with an OLED panel")
	case "IPS":
		clauses = append(clauses, "with an IPS panel")
	case "VA":
		clauses = append(clauses, "with a VA panel")
	case "TN":
		clauses = append(clauses, "with a TN panel")
	}

	switch refresh := num(attrs, "max_refresh_rate__hz"); {
	case refresh == 0:
	case refresh < 60:
		clauses = append(clauses, "with a low refresh rate")
	case refresh < 120:
		clauses = append(clauses, "with a high refresh rate")
	default:
		clauses = append(clauses, "with a very high refresh rate")
	}

	switch density := num(attrs, "pixel_density__ppi"); {
	case density == 0:
	case density < 200:
		clauses = append(clauses, "with low pixel density")
	case density < 300:
		clauses = append(clauses, "with moderate pixel density")
	default:
		clauses = append(clauses, "with high pixel density")
	}

	switch size := num(attrs, "size__inch"); {
	case size == 0:
	case size < 13:
		clauses = append(clauses, "sized small")
	case size < 16:
		clauses = append(clauses, "sized medium")
	default:
		clauses = append(clauses, "sized large")
	}

	if tech := str(attrs, "technology"); tech == "LED" {
		clauses = append(clauses, "with an LED backlight")
	}

	if len(clauses) == 0 {
		return ""
	}
	return "Has " + sentence(clauses...) + "."
}
