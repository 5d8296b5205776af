package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/automoto/capsulerun/systems"
	factory2 "github.com/automoto/capsulerun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one level with one controller variant.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        string
	kind         movement.Kind
	once         sync.Once
	openSwitcher bool
	resumed      bool
}

// NewWorldScene creates a scene for level driven by the given variant
func NewWorldScene(sc SceneChanger, level string, kind movement.Kind) *WorldScene {
	return &WorldScene{sceneChanger: sc, level: level, kind: kind}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.resumed {
		ws.resumed = false
		systems.RefreshSettings(ws.ecs)
	}
	ws.ecs.Update()

	if ws.openSwitcher {
		ws.openSwitcher = false
		ws.sceneChanger.ChangeScene(NewSwitcherScene(ws.sceneChanger, ws))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Resume marks the scene as returning from the switcher.
func (ws *WorldScene) Resume() {
	ws.resumed = true
}

// Level returns the running level name and variant.
func (ws *WorldScene) Level() (string, movement.Kind) {
	return ws.level, ws.kind
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdateSwitchKeys(func() { ws.openSwitcher = true }))
	ecs.AddSystem(systems.UpdateController)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateFade)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawFade)

	ws.ecs = ecs

	// Create the level entity and its collision world FIRST.
	levelEntry := factory2.CreateLevel(ws.ecs, ws.level)
	levelData := components.Level.Get(levelEntry)
	ws.level = levelData.CurrentLevel.Name

	factory2.CreateSpace(ws.ecs, levelData.World)

	settings := systems.GetOrCreateSettings(ws.ecs)
	settings.LastLevel = ws.level
	settings.LastVariant = ws.kind.String()
	systems.SaveCurrentSettings(settings)

	sensitivity := systems.SensitivityStep(settings.SensitivityIndex).Scale
	player := factory2.CreatePlayer(ws.ecs, levelData.CurrentLevel, ws.kind, sensitivity)
	factory2.CreateCamera(ws.ecs, components.Controller.Get(player).Pose())
	factory2.CreateFade(ws.ecs)

	log.Info().Str("level", ws.level).Str("variant", ws.kind.String()).Msg("scene started")
}
