package systems

import (
	"fmt"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/fonts"
	"github.com/automoto/capsulerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	debugPanelWidth = 300
	minimapSize     = 180
)

// DrawDebug shows the controller state and a top-down map of the broad phase.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return // No player yet
	}
	ctrl := components.Controller.Get(playerEntry)

	lines := debugLines(ctrl)
	face := fonts.HUDSmall.Get()
	lineHeight := face.Metrics().Height.Ceil()
	margin := int(cfg.HUD.Margin)
	x := screen.Bounds().Dx() - debugPanelWidth - margin

	vector.DrawFilledRect(screen,
		float32(x-4), float32(margin),
		float32(debugPanelWidth), float32(lineHeight*len(lines)+8),
		cfg.HUD.PanelColor, false)
	y := margin + lineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, x, y, cfg.HUD.TextColor)
		y += lineHeight
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		drawMinimap(screen, components.Space.Get(spaceEntry), x-4, y+margin)
	}

	if ctrl.LastHit {
		if view, ok := components.View.First(ecs.World); ok {
			w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
			p := newProjector(components.View.Get(view), w, h, cfg.View)
			feet := ctrl.Body.Feet()
			drawSegment(screen, p, feet, feet.Add(ctrl.LastContact.Normal), cfg.HUD.ContactColor)
		}
	}
}

func debugLines(ctrl *components.ControllerData) []string {
	b := ctrl.Body
	pos := b.Feet()
	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("pos  %6.2f %6.2f %6.2f", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("vel  %6.2f %6.2f %6.2f", b.Velocity.X(), b.Velocity.Y(), b.Velocity.Z()),
		fmt.Sprintf("speed %.2f  on floor %t", b.HorizontalSpeed(), b.OnFloor),
	}
	if ctrl.LastHit {
		n := ctrl.LastContact.Normal
		lines = append(lines, fmt.Sprintf("contact %5.2f %5.2f %5.2f  depth %.3f", n.X(), n.Y(), n.Z(), ctrl.LastContact.Depth))
	} else {
		lines = append(lines, "contact none")
	}
	lines = append(lines, fmt.Sprintf("steps %d  resets %d", ctrl.Steps, ctrl.Resets))
	return lines
}
