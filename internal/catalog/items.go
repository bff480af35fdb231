package catalog

import (
	"regexp"
	"strconv"
)

// MenuItem is one node of the hierarchical shipping catalog.
// A node with a cost and no children is a leaf (a shippable good);
// a node with children is navigable.
type MenuItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Type        string      `json:"type,omitempty"`
	Description string      `json:"description,omitempty"`
	Cost        int         `json:"cost,omitempty"`
	Layers      []IconLayer `json:"layers,omitempty"`
	Children    []*MenuItem `json:"children,omitempty"`
}

// IconLayer stacks an extra texture under or over an item's icon.
type IconLayer struct {
	Texture string `json:"texture"`
	Depth   int    `json:"depth"`
}

// IsNavigable reports whether confirming this item opens a deeper level.
func (m *MenuItem) IsNavigable() bool {
	return len(m.Children) > 0
}

// IsLeaf reports whether this item is a selectable good.
func (m *MenuItem) IsLeaf() bool {
	return len(m.Children) == 0 && m.Cost > 0
}

// IconKey returns the texture key to render for this item,
// falling back to the id when no icon is set.
func (m *MenuItem) IconKey() string {
	if m.Icon != "" {
		return m.Icon
	}
	return m.ID
}

var navDownRe = regexp.MustCompile(`^nav_([a-z]+)_down_(\d+)$`)

// NavDownLevel parses a synthetic "go deeper" node id of the form
// nav_<category>_down_<N>. It returns the category, the depth N, and
// whether the id matched at all.
func NavDownLevel(id string) (category string, level int, ok bool) {
	m := navDownRe.FindStringSubmatch(id)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}

// CollectLeaves walks an item tree depth-first and returns every leaf node.
func CollectLeaves(items []*MenuItem) []*MenuItem {
	var out []*MenuItem
	var walk func([]*MenuItem)
	walk = func(nodes []*MenuItem) {
		for _, n := range nodes {
			if len(n.Children) > 0 {
				walk(n.Children)
			} else {
				out = append(out, n)
			}
		}
	}
	walk(items)
	return out
}
