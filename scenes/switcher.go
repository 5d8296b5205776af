package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/capsulerun/components"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/automoto/capsulerun/systems"
	factory2 "github.com/automoto/capsulerun/systems/factory"
	"github.com/automoto/capsulerun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SwitcherScene lists every level and controller pairing using ebitenui
type SwitcherScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	running      *WorldScene
	switcherUI   *ui.SwitcherUI
	switcher     *components.SwitcherData
	once         sync.Once

	picked   *components.SwitcherChoice
	resuming bool
}

// NewSwitcherScene creates the switcher. running is the scene to resume, or nil
// on startup.
func NewSwitcherScene(sc SceneChanger, running *WorldScene) *SwitcherScene {
	return &SwitcherScene{sceneChanger: sc, running: running}
}

func (ss *SwitcherScene) Update() {
	ss.once.Do(ss.configure)

	ss.ecs.Update()
	ss.switcherUI.Update()

	switch {
	case ss.picked != nil:
		ss.start(*ss.picked)
	case ss.resuming:
		ss.running.Resume()
		ss.sceneChanger.ChangeScene(ss.running)
	}
}

func (ss *SwitcherScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ss.ecs == nil {
		return
	}

	ss.switcherUI.UI.Draw(screen)
}

func (ss *SwitcherScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	settings := systems.GetOrCreateSettings(ss.ecs)
	level := settings.LastLevel
	kind, err := movement.ParseKind(settings.LastVariant)
	if err != nil {
		kind = movement.CharacterDriven
	}
	if ss.running != nil {
		level, kind = ss.running.Level()
	}

	entry := ss.ecs.World.Entry(ss.ecs.World.Create(components.Switcher))
	ss.switcher = components.Switcher.Get(entry)
	systems.InitSwitcher(ss.switcher, factory2.LevelList(), level, kind)

	pick := func(c components.SwitcherChoice) { ss.picked = &c }
	var resume func()
	if ss.running != nil {
		resume = func() { ss.resuming = true }
	}

	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateSwitcher(ss.switcher, pick, resume))

	ss.switcherUI = ui.NewSwitcherUI(ss.switcher, settings, pick, resume)
}

// start opens the picked pairing. Picking the running one resumes it.
func (ss *SwitcherScene) start(c components.SwitcherChoice) {
	if ss.running != nil {
		if level, kind := ss.running.Level(); level == c.Level && kind == c.Kind {
			ss.running.Resume()
			ss.sceneChanger.ChangeScene(ss.running)
			return
		}
	}
	ss.sceneChanger.ChangeScene(NewWorldScene(ss.sceneChanger, c.Level, c.Kind))
}
