package systems

import (
	"testing"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/leveldata"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLevels() []*leveldata.Level {
	return []*leveldata.Level{
		{Name: "courtyard", Title: "Courtyard"},
		{Name: "terraces", Title: "Terraces"},
	}
}

func TestInitSwitcherListsEveryPairing(t *testing.T) {
	s := &components.SwitcherData{}
	InitSwitcher(s, testLevels(), "terraces", movement.CameraDriven)

	require.Len(t, s.Choices, 4)
	assert.Equal(t, 3, s.Current)
	assert.Equal(t, 3, s.Selected)
	assert.Equal(t, components.SwitcherChoice{Level: "courtyard", Title: "Courtyard", Kind: movement.CharacterDriven}, s.Choices[0])

	InitSwitcher(s, testLevels(), "nowhere", movement.CameraDriven)
	assert.Len(t, s.Choices, 4)
	assert.Equal(t, -1, s.Current)
	assert.Zero(t, s.Selected)
}

func TestMoveSelectionWraps(t *testing.T) {
	s := &components.SwitcherData{}
	InitSwitcher(s, testLevels(), "courtyard", movement.CharacterDriven)

	MoveSelection(s, -1)
	assert.Equal(t, 3, s.Selected)
	MoveSelection(s, 2)
	assert.Equal(t, 1, s.Selected)

	MoveSelection(&components.SwitcherData{}, 1)
}

func TestChoiceLabel(t *testing.T) {
	s := &components.SwitcherData{}
	InitSwitcher(s, testLevels(), "courtyard", movement.CharacterDriven)

	assert.Equal(t, "> Courtyard / character driven (running)", ChoiceLabel(s, 0))
	assert.Equal(t, "Courtyard / camera driven", ChoiceLabel(s, 1))
}

func TestUpdateSwitcherPicksSelection(t *testing.T) {
	s := &components.SwitcherData{}
	InitSwitcher(s, testLevels(), "courtyard", movement.CharacterDriven)

	var picked *components.SwitcherChoice
	backs := 0
	e := ecs.NewECS(donburi.NewWorld())
	update := NewUpdateSwitcher(s, func(c components.SwitcherChoice) { picked = &c }, func() { backs++ })

	input := getOrCreateInput(e)
	input.Current[cfg.ActionMenuDown] = true
	update(e)
	assert.Equal(t, 1, s.Selected)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMenuSelect] = true
	update(e)
	require.NotNil(t, picked)
	assert.Equal(t, movement.CameraDriven, picked.Kind)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMenuBack] = true
	update(e)
	assert.Equal(t, 1, backs)
}
