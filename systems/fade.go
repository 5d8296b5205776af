package systems

import (
	"image/color"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// startFade blacks the screen out and fades it back in.
func startFade(ecs *ecs.ECS) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok || cfg.HUD.FadeSeconds <= 0 {
		return
	}
	fade := components.Fade.Get(entry)
	fade.Tween = gween.New(1, 0, float32(cfg.HUD.FadeSeconds), ease.OutQuad)
	fade.Alpha = 1
}

// UpdateFade advances the reset overlay.
func UpdateFade(ecs *ecs.ECS) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	advanceFade(components.Fade.Get(entry), 1.0/float64(ebiten.TPS()))
}

func advanceFade(fade *components.FadeData, dt float64) {
	if fade.Tween == nil {
		return
	}
	alpha, finished := fade.Tween.Update(float32(dt))
	fade.Alpha = float64(alpha)
	if finished {
		fade.Tween = nil
		fade.Alpha = 0
	}
}

func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if !fade.Active() || fade.Alpha <= 0 {
		return
	}
	a := uint8(255 * fade.Alpha)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: a}, false)
}
