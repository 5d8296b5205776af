package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives the black overlay shown after a reset.
type FadeData struct {
	Tween *gween.Tween
	Alpha float64
}

// Active reports whether the overlay is still visible.
func (f *FadeData) Active() bool {
	return f.Tween != nil
}

var Fade = donburi.NewComponentType[FadeData]()
