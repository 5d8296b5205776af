package systems

import (
	"fmt"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/fonts"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/automoto/capsulerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level title, the active variant and the control hints.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	kind := components.Controller.Get(playerEntry).Strategy.Kind()
	input := getOrCreateInput(ecs)

	face := fonts.HUD.Get()
	lineHeight := face.Metrics().Height.Ceil()
	margin := int(cfg.HUD.Margin)

	y := margin + lineHeight
	for _, line := range hudHeader(level.Title, kind) {
		text.Draw(screen, line, face, margin, y, cfg.HUD.TextColor)
		y += lineHeight
	}

	small := fonts.HUDSmall.Get()
	smallHeight := small.Metrics().Height.Ceil()
	hints := hudHints(kind, input.PointerLocked)
	y = screen.Bounds().Dy() - margin - smallHeight*(len(hints)-1)
	for _, line := range hints {
		text.Draw(screen, line, small, margin, y, cfg.HUD.TextColor)
		y += smallHeight
	}
}

func hudHeader(title string, kind movement.Kind) []string {
	return []string{
		title,
		fmt.Sprintf("Controller: %s", VariantLabel(kind)),
	}
}

func hudHints(kind movement.Kind, locked bool) []string {
	var hints []string
	switch kind {
	case movement.CameraDriven:
		hints = append(hints, "WASD / arrows: move relative to view, Space: jump")
	default:
		hints = append(hints, "W/S: forward/back, A/D: turn, Space: jump")
	}
	hints = append(hints, "Tab: switch level or controller, R: reset, F3: debug")
	if locked {
		hints = append(hints, "Esc: release mouse")
	} else {
		hints = append(hints, "Click to look around with the mouse")
	}
	return hints
}

// VariantLabel is the human name of a controller variant.
func VariantLabel(kind movement.Kind) string {
	switch kind {
	case movement.CameraDriven:
		return "camera driven"
	default:
		return "character driven"
	}
}
