package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Level  = donburi.NewTag().SetName("Level")
	Camera = donburi.NewTag().SetName("Camera")
)

// Resolv tags for the broad phase
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
