package systems

import (
	"image/color"

	"github.com/automoto/capsulerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

// drawMinimap draws the broad-phase objects seen from above. The player probe
// sits wherever the last collision query put it.
func drawMinimap(screen *ebiten.Image, space *resolv.Space, x, y int) {
	if space == nil {
		return
	}
	spaceW := float64(space.Width() * space.CellWidth)
	spaceH := float64(space.Height() * space.CellHeight)
	if spaceW <= 0 || spaceH <= 0 {
		return
	}
	scale := minimapSize / max(spaceW, spaceH)

	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(spaceW*scale), float32(spaceH*scale),
		color.RGBA{0, 0, 0, 160}, false)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}
		ox := float32(float64(x) + obj.X*scale)
		oy := float32(float64(y) + obj.Y*scale)
		ow := float32(obj.W * scale)
		oh := float32(obj.H * scale)
		vector.StrokeRect(screen, ox, oy, ow, oh, 1, c, false)
	}
}
