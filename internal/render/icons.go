package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextureSource resolves icon keys to drawable textures. The dial treats a
// missing texture as "render a text label instead", never as an error.
type TextureSource interface {
	Has(key string) bool
	Image(key string) *ebiten.Image
}

const iconSize = 48

// Textures is the concrete TextureSource: procedurally generated icon
// images keyed the same way the catalog references them.
type Textures struct {
	images map[string]*ebiten.Image
}

var categoryTints = map[string]color.RGBA{
	"resource":    {90, 200, 250, 255},
	"arm":         {250, 120, 90, 255},
	"melee":       {230, 230, 120, 255},
	"radioactive": {130, 250, 110, 255},
	"mining":      {210, 160, 90, 255},
	"streetwear":  {200, 120, 240, 255},
}

var categoryCounts = map[string]int{
	"resource": 14, "arm": 9, "melee": 6,
	"radioactive": 7, "mining": 11, "streetwear": 8,
}

// NewTextures generates the full icon set at startup.
func NewTextures() *Textures {
	t := &Textures{images: make(map[string]*ebiten.Image)}

	skills := map[string]color.RGBA{
		"skill-chip":        categoryTints["resource"],
		"skill-ranged":      categoryTints["arm"],
		"skill-melee":       categoryTints["melee"],
		"skill-radioactive": categoryTints["radioactive"],
		"skill-drill":       categoryTints["mining"],
		"skill-character":   categoryTints["streetwear"],
	}
	for key, tint := range skills {
		t.images[key] = makeSkillIcon(tint)
	}
	t.images["skill-down"] = makeChevronIcon(NeonBlue)
	t.images["skill-blocked"] = makeBlockedIcon()
	t.images["frame"] = makeFrameIcon()

	for prefix, count := range categoryCounts {
		tint := categoryTints[prefix]
		for i := 1; i <= count; i++ {
			t.images[fmt.Sprintf("%s%d", prefix, i)] = makeItemIcon(tint, i)
		}
	}
	return t
}

// Has implements TextureSource.
func (t *Textures) Has(key string) bool {
	_, ok := t.images[key]
	return ok
}

// Image implements TextureSource.
func (t *Textures) Image(key string) *ebiten.Image {
	return t.images[key]
}

// makeSkillIcon draws a ringed diamond in the category tint.
func makeSkillIcon(tint color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(iconSize, iconSize)
	c := float32(iconSize) / 2
	vector.StrokeCircle(img, c, c, c-3, 2, tint, true)
	var path vector.Path
	path.MoveTo(c, 8)
	path.LineTo(iconSize-8, c)
	path.LineTo(c, iconSize-8)
	path.LineTo(8, c)
	path.Close()
	fillPath(img, &path, WithAlpha(tint, 0.7))
	return img
}

// makeItemIcon draws a tinted shape whose spoke count tracks the item
// index, so every generated icon is visually distinct.
func makeItemIcon(tint color.RGBA, index int) *ebiten.Image {
	img := ebiten.NewImage(iconSize, iconSize)
	c := float32(iconSize) / 2
	spokes := 3 + index%5
	r := c - 6
	for i := 0; i < spokes; i++ {
		a := float32(i) / float32(spokes) * 2 * 3.14159265
		vector.StrokeLine(img, c, c, c+r*cosf(a), c+r*sinf(a), 3, tint, true)
	}
	vector.DrawFilledCircle(img, c, c, 6, tint, true)
	vector.StrokeCircle(img, c, c, r, 1.5, WithAlpha(tint, 0.5), true)
	return img
}

func makeChevronIcon(tint color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(iconSize, iconSize)
	c := float32(iconSize) / 2
	for _, dy := range []float32{-6, 6} {
		var path vector.Path
		path.MoveTo(10, c-8+dy)
		path.LineTo(c, c+6+dy)
		path.LineTo(iconSize-10, c-8+dy)
		op := &vector.StrokeOptions{Width: 4}
		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
		tintVertices(vs, tint)
		img.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
	return img
}

func makeBlockedIcon() *ebiten.Image {
	img := ebiten.NewImage(iconSize, iconSize)
	c := float32(iconSize) / 2
	clr := color.RGBA{120, 120, 140, 255}
	vector.StrokeCircle(img, c, c, c-5, 3, clr, true)
	vector.StrokeLine(img, 12, 12, iconSize-12, iconSize-12, 3, clr, true)
	return img
}

func makeFrameIcon() *ebiten.Image {
	img := ebiten.NewImage(iconSize, iconSize)
	vector.StrokeCircle(img, iconSize/2, iconSize/2, iconSize/2-2, 2, BorderBlue, true)
	return img
}
