package dashboard

import (
	"html/template"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FuncMap returns the helpers every dashboard template can call.
func FuncMap() map[string]interface{} {
	return map[string]interface{}{
		"fixed":        Fixed,
		"number":       Number,
		"price":        Price,
		"scoreColor":   ScoreColor,
		"statusBadge":  StatusBadge,
		"buttonClass":  ButtonClass,
		"placeholders": Placeholders,
		"icon":         Icon,
	}
}

// Fixed formats v with exactly digits decimals.
func Fixed(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// Number formats an integer with English thousands separators.
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Price formats a dollar amount with two decimals and grouping.
func Price(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// ScoreColor picks the text colour of an overall score badge.
func ScoreColor(score float64) string {
	switch {
	case score > 70:
		return "text-green-500"
	case score > 40:
		return "text-yellow-500"
	default:
		return "text-red-500"
	}
}

// StatusBadge picks the badge classes for a design status.
func StatusBadge(status string) string {
	if status == "draft" {
		return "bg-yellow-900/30 text-yellow-200"
	}
	return "bg-green-900/30 text-green-200"
}

var (
	buttonVariants = map[string]string{
		"primary":   "bg-primary text-white hover:bg-blue-600",
		"secondary": "bg-secondary text-white hover:bg-purple-600",
		"outline":   "border border-primary text-primary hover:bg-primary hover:text-white",
	}
	buttonSizes = map[string]string{
		"sm": "px-3 py-1 text-sm",
		"md": "px-4 py-2 text-base",
		"lg": "px-6 py-3 text-lg",
	}
)

// ButtonClass builds the class list of a button. Unknown variants fall back
// to primary and unknown sizes to md.
func ButtonClass(variant, size string) string {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants["primary"]
	}
	s, ok := buttonSizes[size]
	if !ok {
		s = buttonSizes["md"]
	}
	return strings.Join([]string{"font-semibold rounded-lg transition", v, s}, " ")
}

// Placeholders returns n elements for ranging over skeleton cards.
func Placeholders(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Icon renders a lucide icon placeholder element.
func Icon(name string, size int, class string) template.HTML {
	return template.HTML(`<i data-lucide="` + template.HTMLEscapeString(name) +
		`" class="` + template.HTMLEscapeString(class) +
		`" style="width:` + strconv.Itoa(size) + `px;height:` + strconv.Itoa(size) + `px"></i>`)
}
