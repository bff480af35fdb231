package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// node is the lifecycle state shared by every display object.
type node struct {
	depth     int
	destroyed bool
}

// Destroy removes the object from its stage on the next prune.
func (n *node) Destroy() { n.destroyed = true }

// Destroyed reports whether the object has been destroyed.
func (n *node) Destroyed() bool { return n.destroyed }

// SetDepth changes the draw order; higher depths draw later (on top).
func (n *node) SetDepth(d int) { n.depth = d }

type displayObject interface {
	draw(dst *ebiten.Image, atlas *FontAtlas)
	Destroyed() bool
	depthOf() int
}

func (n *node) depthOf() int { return n.depth }

// Stage is a depth-ordered list of display objects. It is the retained
// scene the dial draws into; recording commands never touches the GPU,
// only Draw does.
type Stage struct {
	objects []displayObject
	atlas   *FontAtlas
}

// NewStage creates an empty stage. The atlas may be nil in headless use;
// labels then occupy layout space but draw nothing.
func NewStage(atlas *FontAtlas) *Stage {
	return &Stage{atlas: atlas}
}

// NewGraphic adds an empty graphic at the given depth.
func (s *Stage) NewGraphic(depth int) *Graphic {
	g := &Graphic{node: node{depth: depth}}
	s.objects = append(s.objects, g)
	return g
}

// NewSprite adds a positioned bitmap at the given depth.
func (s *Stage) NewSprite(img *ebiten.Image, x, y float64, depth int) *Sprite {
	sp := &Sprite{node: node{depth: depth}, Img: img, X: x, Y: y}
	s.objects = append(s.objects, sp)
	return sp
}

// NewLabel adds a text label centered at (x, y).
func (s *Stage) NewLabel(text string, x, y float64, scale float64, depth int) *Label {
	l := &Label{node: node{depth: depth}, Text: text, X: x, Y: y, Scale: scale, Clr: TextBright}
	s.objects = append(s.objects, l)
	return l
}

// Len returns the number of live display objects.
func (s *Stage) Len() int {
	s.prune()
	return len(s.objects)
}

// Draw prunes destroyed objects and replays the rest in depth order.
func (s *Stage) Draw(dst *ebiten.Image) {
	s.prune()
	sort.SliceStable(s.objects, func(i, j int) bool {
		return s.objects[i].depthOf() < s.objects[j].depthOf()
	})
	for _, o := range s.objects {
		o.draw(dst, s.atlas)
	}
}

// DestroyAll destroys every object on the stage.
func (s *Stage) DestroyAll() {
	for _, o := range s.objects {
		if g, ok := o.(interface{ Destroy() }); ok {
			g.Destroy()
		}
	}
	s.prune()
}

func (s *Stage) prune() {
	live := s.objects[:0]
	for _, o := range s.objects {
		if !o.Destroyed() {
			live = append(live, o)
		}
	}
	s.objects = live
}
