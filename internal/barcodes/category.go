package barcodes

import "strings"

// Category names. The set is fixed.
const (
	Flipkart   = "Flipkart"
	Valmo      = "Valmo"
	Shadowfax  = "Shadowfax"
	XpressBees = "XpressBees"
	Delhivery  = "Delhivery"
	Amazon     = "Amazon"
	Others     = "Others"
)

// Category is a carrier classification with its display rank (1..7).
// It is derived from a code on demand and never stored on a record.
type Category struct {
	Name  string
	Order int
}

type prefixRule struct {
	prefix   string
	category Category
}

// Evaluated top to bottom, first match wins.
var rules = []prefixRule{
	{prefix: "FM", category: Category{Name: Flipkart, Order: 1}},
	{prefix: "VL", category: Category{Name: Valmo, Order: 2}},
	{prefix: "SF", category: Category{Name: Shadowfax, Order: 3}},
	{prefix: "13", category: Category{Name: XpressBees, Order: 4}},
	{prefix: "14", category: Category{Name: Delhivery, Order: 5}},
	{prefix: "36", category: Category{Name: Amazon, Order: 6}},
}

var others = Category{Name: Others, Order: 7}

// Classify maps a code to its carrier category by case-sensitive prefix.
func Classify(code string) Category {
	for _, r := range rules {
		if strings.HasPrefix(code, r.prefix) {
			return r.category
		}
	}
	return others
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, others)
}

// CategoryByName resolves an exact category name.
func CategoryByName(name string) (Category, bool) {
	for _, c := range Categories() {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
