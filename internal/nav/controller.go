// Package nav tracks the player's position in the catalog tree as a
// breadcrumb stack of item levels.
package nav

import "github.com/bblue/clicker-shipper/internal/catalog"

// Controller is a tree-walk breadcrumb stack. Level 0 is the root item
// slice supplied at construction; drilling into an item pushes its
// children as the new current level.
type Controller struct {
	root   []*catalog.MenuItem
	levels [][]*catalog.MenuItem
}

// New creates a controller positioned at the given root level.
func New(root []*catalog.MenuItem) *Controller {
	return &Controller{
		root:   root,
		levels: [][]*catalog.MenuItem{root},
	}
}

// Current returns the item slice of the current level.
func (c *Controller) Current() []*catalog.MenuItem {
	return c.levels[len(c.levels)-1]
}

// Depth returns how many levels deep the controller is. Root is depth 0.
func (c *Controller) Depth() int {
	return len(c.levels) - 1
}

// CanGoBack reports whether GoBack would pop a level.
func (c *Controller) CanGoBack() bool {
	return len(c.levels) > 1
}

// DrillDown pushes item's children as the new current level and returns
// them. Items without children leave the stack unchanged and return an
// empty slice.
func (c *Controller) DrillDown(item *catalog.MenuItem) []*catalog.MenuItem {
	if item == nil || len(item.Children) == 0 {
		return nil
	}
	c.levels = append(c.levels, item.Children)
	return item.Children
}

// GoBack pops one level and returns the new current level.
// At the root it is a no-op returning nil.
func (c *Controller) GoBack() []*catalog.MenuItem {
	if len(c.levels) <= 1 {
		return nil
	}
	c.levels = c.levels[:len(c.levels)-1]
	return c.Current()
}

// Reset returns to the original root level, keeping the same backing slice.
func (c *Controller) Reset() {
	c.levels = c.levels[:0]
	c.levels = append(c.levels, c.root)
}

// Path resolves the breadcrumb ids from the root down to the current level.
// Each stored level slice is matched against the Children reference of the
// items one level up; its length always equals Depth.
func (c *Controller) Path() []string {
	path := make([]string, 0, len(c.levels)-1)
	for i := 1; i < len(c.levels); i++ {
		level := c.levels[i]
		parentLevel := c.levels[i-1]
		for _, item := range parentLevel {
			if len(item.Children) > 0 && sameSlice(item.Children, level) {
				path = append(path, item.ID)
				break
			}
		}
	}
	return path
}

// sameSlice reports whether two slices share the same backing reference.
func sameSlice(a, b []*catalog.MenuItem) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}
