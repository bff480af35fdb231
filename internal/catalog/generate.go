package catalog

import "fmt"

// categoryDef describes one root category of the generated catalog.
type categoryDef struct {
	name      string // folder/type name, e.g. "resources"
	prefix    string // icon prefix, e.g. "resource"
	rootIcon  string
	title     string
	desc      string
	baseCost  int
	iconCount int
}

var categories = []categoryDef{
	{"resources", "resource", "skill-chip", "Resource Systems", "Core materials and components", 10, 14},
	{"armaments", "arm", "skill-ranged", "Ranged Systems", "Advanced armaments and ranged tech", 24, 9},
	{"melee", "melee", "skill-melee", "Melee Systems", "Close-quarters equipment", 18, 6},
	{"radioactive", "radioactive", "skill-radioactive", "Radioactive Systems", "Hazardous materials and tech", 32, 7},
	{"mining", "mining", "skill-drill", "Mining Systems", "Extraction and drilling equipment", 15, 11},
	{"streetwear", "streetwear", "skill-character", "Streetwear Systems", "Apparel and character gear", 16, 8},
}

// Generate builds the full procedural catalog: six root categories, each a
// chain of levels holding at most six entries. Levels with more icons than
// fit get five leaves plus a nav_<category>_down_<N> node that carries the
// remainder one level deeper.
func Generate() []*MenuItem {
	items := make([]*MenuItem, 0, len(categories))
	for _, c := range categories {
		icons := make([]string, c.iconCount)
		for i := range icons {
			icons[i] = fmt.Sprintf("%s%d", c.prefix, i+1)
		}
		items = append(items, &MenuItem{
			ID:          fmt.Sprintf("nav_%s_root", c.name),
			Name:        c.title,
			Icon:        c.rootIcon,
			Description: c.desc,
			Layers: []IconLayer{
				{Texture: c.rootIcon, Depth: 3},
				{Texture: "frame", Depth: 2},
			},
			Children: buildChain(c, icons, 1, 1),
		})
	}
	return items
}

// buildChain lays out icons across levels. The nav-down node sits in slot 2
// so the "deeper" wedge stays in a stable position on the dial.
func buildChain(c categoryDef, icons []string, startIndex, level int) []*MenuItem {
	if len(icons) <= 6 {
		out := make([]*MenuItem, len(icons))
		for i, icon := range icons {
			out[i] = makeLeaf(c, icon, startIndex+i)
		}
		return out
	}

	current := icons[:5]
	next := buildChain(c, icons[5:], startIndex+5, level+1)

	out := make([]*MenuItem, 0, 6)
	out = append(out, makeLeaf(c, current[0], startIndex))
	out = append(out, &MenuItem{
		ID:          fmt.Sprintf("nav_%s_down_%d", c.name, level),
		Name:        fmt.Sprintf("More %s", c.title),
		Icon:        "skill-down",
		Description: fmt.Sprintf("More %s items", c.name),
		Layers: []IconLayer{
			{Texture: "skill-down", Depth: 3},
			{Texture: "frame", Depth: 2},
		},
		Children: next,
	})
	for i := 1; i < 5; i++ {
		out = append(out, makeLeaf(c, current[i], startIndex+i))
	}
	return out
}

func makeLeaf(c categoryDef, icon string, index int) *MenuItem {
	return &MenuItem{
		ID:   fmt.Sprintf("item_%s_%03d", c.name, index),
		Name: icon,
		Icon: icon,
		Type: c.name,
		Cost: c.baseCost + (index-1)%6,
	}
}
