package classifier

import "fmt"

func classifyDesign(attrs map[string]any) string {
	color := str(attrs, "color_name")
	if color == "" {
		color = str(attrs, "color")
	}

	var colorMsg, materialMsg string
	if color != "" {
		colorMsg = fmt.Sprintf("The color is %s.", color)
	}
	if material := str(attrs, "material"); material != "" {
		materialMsg = fmt.Sprintf("The body is made of %s.", material)
	}

	return sentence(colorMsg, materialMsg)
}

func classifyMeasurements(attrs map[string]any) string {
	heightFront := num(attrs, "height_front__mm")
	heightBack := num(attrs, "height_back__mm")
	if heightFront == 0 && heightBack == 0 {
		// Flat chassis records carry a single height.
		heightFront = num(attrs, "height__mm")
		heightBack = heightFront
	}
	length := num(attrs, "length__mm")
	width := num(attrs, "width__mm")
	weight := num(attrs, "weight__g")

	if heightFront == 0 && length == 0 && width == 0 && weight == 0 {
		return ""
	}

	var height string
	switch {
	case heightFront < 10 && heightBack < 15:
		height = "thin"
	case heightFront < 15 && heightBack < 20:
		height = "slim"
	default:
		height = "thick"
	}

	var lengthClass string
	switch {
	case length < 300:
		lengthClass = "short"
	case length < 350:
		lengthClass = "medium"
	default:
		lengthClass = "long"
	}

	var widthClass string
	switch {
	case width < 200:
		widthClass = "narrow"
	case width < 250:
		widthClass = "medium"
	default:
		widthClass = "wide"
	}

	var weightClass string
	switch {
	case weight < 1000:
		weightClass = "light"
	case weight < 2000:
		weightClass = "medium"
	default:
		weightClass = "heavy"
	}

	return fmt.Sprintf("Is %s and %s with a %s design, and it's %s.",
		height, lengthClass, widthClass, weightClass)
}

func classifySoftware(attrs map[string]any) string {
	var clauses []string

	if os := str(attrs, "os"); os != "" {
		if arch := num(attrs, "os_architecture__bit"); arch > 0 {
			clauses = append(clauses, fmt.Sprintf("running %s %g-bit", os, arch))
		} else {
			clauses = append(clauses, "running "+os)
		}
		if lang := str(attrs, "os_language"); lang != "" {
			clauses = append(clauses, fmt.Sprintf("with %s language pack", lang))
		}
	}
	if sw := str(attrs, "available_software"); sw != "" {
		clauses = append(clauses, fmt.Sprintf("with %s software pre-installed", sw))
	}
	if trial := str(attrs, "trialsoftware"); trial != "" {
		clauses = append(clauses, fmt.Sprintf("with %s trial software pre-installed", trial))
	}

	if len(clauses) == 0 {
		return ""
	}
	return "Comes " + sentence(clauses...) + "."
}

func classifyPrice(attrs map[string]any) string {
	usd := num(attrs, "price_usd")
	switch {
	case usd == 0:
		return ""
	case usd < 500:
		return "Is an affordable device."
	case usd < 1000:
		return "Is a moderately priced device."
	default:
		return "Is an expensive device."
	}
}
