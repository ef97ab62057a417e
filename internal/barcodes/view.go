package barcodes

import (
	"sort"
	"strings"
)

// Item is a record as it appears in a derived view. Index is the record's
// position in the unfiltered store and is what positional deletes expect.
type Item struct {
	Index int
	Record
}

// Group is one category of the grouped view.
type Group struct {
	Category
	Items []Item
}

// GroupView partitions records by category, orders groups by category rank
// and keeps store order inside each group. Empty categories are omitted.
func GroupView(records []Record) []Group {
	byName := make(map[string]*Group)
	var groups []*Group

	for i, r := range records {
		c := Classify(r.Code)
		g, ok := byName[c.Name]
		if !ok {
			g = &Group{Category: c}
			byName[c.Name] = g
			groups = append(groups, g)
		}
		g.Items = append(g.Items, Item{Index: i, Record: r})
	}

	sort.SliceStable(groups, func(a, b int) bool { return groups[a].Order < groups[b].Order })

	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	return out
}

// GroupItems returns the records classified as groupName, in store order.
func GroupItems(records []Record, groupName string) []Item {
	var out []Item
	for i, r := range records {
		if Classify(r.Code).Name == groupName {
			out = append(out, Item{Index: i, Record: r})
		}
	}
	return out
}

// Search returns records whose code contains term, ignoring case. A non-empty
// scopeGroup restricts the search to that category. An empty term yields nil;
// callers fall back to GroupView or GroupItems.
func Search(records []Record, term, scopeGroup string) []Item {
	if term == "" {
		return nil
	}
	needle := strings.ToLower(term)

	var out []Item
	for i, r := range records {
		if scopeGroup != "" && Classify(r.Code).Name != scopeGroup {
			continue
		}
		if strings.Contains(strings.ToLower(r.Code), needle) {
			out = append(out, Item{Index: i, Record: r})
		}
	}
	return out
}

// Indices extracts the original indices of items.
func Indices(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Index
	}
	return out
}
