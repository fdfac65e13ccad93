package classifier

import "fmt"

func classifyAudio(attrs map[string]any) string {
	var speakersMsg, headphoneMsg, micMsg, chipMsg string

	if n := int(num(attrs, "number_of_speakers")); n > 0 {
		speakersMsg = fmt.Sprintf("Has %s.", counted(n, "built-in speaker"))
	}
	if n := int(num(attrs, "number_of_headphone_outputs")); n > 0 {
		headphoneMsg = fmt.Sprintf("Has %s.", counted(n, "headphone jack"))
	}
	if n := int(num(attrs, "number_of_microphones")); n > 0 {
		micMsg = fmt.Sprintf("Has %s.", counted(n, "built-in microphone"))
	}
	if chip := str(attrs, "audiochip"); chip != "" {
		chipMsg = fmt.Sprintf("Uses %s audio chip.", an(chip))
	}

	return sentence(speakersMsg, headphoneMsg, micMsg, chipMsg)
}

func classifyCamera(attrs map[string]any) string {
	var clauses []string

	frontMP := num(attrs, "camera_front__mp")
	frontRes := num(attrs, "camera_front_resolution__p")
	if flag(attrs, "has_camera_front") {
		switch {
		case frontMP > 0 && frontRes > 0:
			clauses = append(clauses, fmt.Sprintf("Has a front camera with %gMP and %gp resolution.", frontMP, frontRes))
		case frontMP > 0:
			clauses = append(clauses, fmt.Sprintf("Has a front camera with %gMP quality.", frontMP))
		case frontRes > 0:
			clauses = append(clauses, fmt.Sprintf("Has a front camera with %gp resolution.", frontRes))
		default:
			clauses = append(clauses, "Has a front camera.")
		}
	}
	if flag(attrs, "has_camera_back") {
		clauses = append(clauses, "Has a back camera.")
	}
	if fps := num(attrs, "capturing_speed__fps"); fps > 0 {
		clauses = append(clauses, fmt.Sprintf("The camera can capture at %g FPS.", fps))
	}
	if flag(attrs, "has_infrared") {
		clauses = append(clauses, "Has an infrared camera.")
	}
	if flag(attrs, "has_privacy_camera") {
		if t := str(attrs, "type_privacy"); t != "" {
			clauses = append(clauses, fmt.Sprintf("Has a privacy camera with %s technology.", t))
		} else {
			clauses = append(clauses, "Has a privacy camera.")
		}
	}

	// The resolution bucket covers records that only carry a megapixel
	// count. Zero with no other camera signal means no camera at all.
	switch mp := num(attrs, "megapixels"); {
	case mp == 0:
		if len(clauses) == 0 {
			return "Does not have a camera."
		}
	case mp <= 5:
		clauses = append(clauses, "The camera has a low resolution.")
	case mp <= 12:
		clauses = append(clauses, "The camera has an average resolution.")
	default:
		clauses = append(clauses, "The camera has a high resolution.")
	}

	return sentence(clauses...)
}

func classifyKeyboard(attrs map[string]any) string {
	var clauses []string

	if t := str(attrs, "type"); t != "" {
		clauses = append(clauses, an(t)+" keyboard")
	}
	if flag(attrs, "has_light") {
		if color := str(attrs, "color_light"); color != "" {
			clauses = append(clauses, fmt.Sprintf("with %s backlight", color))
		} else {
			clauses = append(clauses, "with backlight")
		}
	}
	if flag(attrs, "has_numeric_keyboard") {
		clauses = append(clauses, "with a numeric keypad")
	}
	if flag(attrs, "has_programmable_keys") {
		clauses = append(clauses, "with programmable keys")
	}
	if flag(attrs, "has_touchbar") {
		clauses = append(clauses, "with a Touch Bar")
	}
	if flag(attrs, "has_touchpad") {
		if t := str(attrs, "type_touchpad"); t != "" {
			clauses = append(clauses, fmt.Sprintf("with %s touchpad", an(t)))
		} else {
			clauses = append(clauses, "with a touchpad")
		}
	}

	if len(clauses) == 0 {
		return ""
	}
	return "Has " + sentence(clauses...) + "."
}

func classifyPorts(attrs map[string]any) string {
	ports := []struct{ key, label string }{
		{"has_usb_a_gen_1", "USB-A Gen 1"},
		{"has_usb_a_gen_2", "USB-A Gen 2"},
		{"has_usb_c_gen_2", "USB-C Gen 2"},
		{"has_usb_c_displayport_alternative_modus", "USB-C DisplayPort alternative mode"},
		{"has_usb_power_delivery", "USB Power Delivery"},
		{"has_thunderbolt", "Thunderbolt"},
		{"has_mini_displayport", "Mini DisplayPort"},
		{"has_displayport", "DisplayPort"},
		{"has_dvi_port", "DVI"},
		{"has_vga_port", "VGA"},
	}

	var present []string
	for _, p := range ports {
		if flag(attrs, p.key) {
			present = append(present, p.label)
		}
	}

	switch len(present) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Has a %s port.", present[0])
	default:
		return fmt.Sprintf("Has %s ports.", listAnd(present))
	}
}

func classifyNetwork(attrs map[string]any) string {
	var basics []string
	if flag(attrs, "has_bluetooth") {
		basics = append(basics, "Bluetooth")
	}
	if flag(attrs, "has_ethernet_lan") {
		basics = append(basics, "Ethernet LAN")
	}
	if flag(attrs, "has_mobile_connection") {
		basics = append(basics, "mobile data")
	}

	var clauses []string
	if len(basics) > 0 {
		clauses = append(clauses, fmt.Sprintf("Supports %s.", listAnd(basics)))
	}
	if rate := num(attrs, "max_wireless_data_transfer_rate__mbits"); rate > 0 {
		clauses = append(clauses, fmt.Sprintf("Has a maximum wireless data transfer rate of %g Mbps.", rate))
	}
	if m := str(attrs, "manufacturer_wlan_controller"); m != "" {
		clauses = append(clauses, fmt.Sprintf("The WLAN controller is manufactured by %s.", m))
	}
	if t := str(attrs, "type_antenna"); t != "" {
		clauses = append(clauses, fmt.Sprintf("Has %s antenna.", an(t)))
	}
	if t := str(attrs, "type_wlan_controller"); t != "" {
		clauses = append(clauses, fmt.Sprintf("Has %s WLAN controller.", an(t)))
	}
	if s := str(attrs, "wifi_standards"); s != "" {
		clauses = append(clauses, fmt.Sprintf("Supports %s.", s))
	}

	return sentence(clauses...)
}

func classifySecurity(attrs map[string]any) string {
	var features []string
	if flag(attrs, "has_fingerprint_reader") {
		features = append(features, "a fingerprint reader")
	}
	if flag(attrs, "has_option_for_cable_lock") {
		features = append(features, "a cable lock option")
	}
	if flag(attrs, "has_password_protection") {
		features = append(features, "password protection")
	}
	if flag(attrs, "has_smart_card_reader") {
		features = append(features, "a smart card reader")
	}

	if len(features) == 0 {
		return "Does not have any dedicated security features."
	}
	return fmt.Sprintf("Has %s.", listAnd(features))
}
