package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SwitcherUI holds the ebitenui interface for the level/variant switcher
type SwitcherUI struct {
	UI       *ebitenui.UI
	Switcher *components.SwitcherData
	Settings *components.SettingsData

	// Callbacks
	OnPick   func(components.SwitcherChoice)
	OnResume func()

	// Widget references for updates
	choiceButtons     []*widget.Button
	sensitivityButton *widget.Button
	debugButton       *widget.Button
	resumeButton      *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewSwitcherUI creates the switcher panel. onResume may be nil when no scene
// is running yet.
func NewSwitcherUI(s *components.SwitcherData, settings *components.SettingsData, onPick func(components.SwitcherChoice), onResume func()) *SwitcherUI {
	sui := &SwitcherUI{
		Switcher: s,
		Settings: settings,
		OnPick:   onPick,
		OnResume: onResume,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SwitcherUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
}

func (sui *SwitcherUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Switcher.ButtonPadding*2)),
			widget.RowLayoutOpts.Spacing(cfg.Switcher.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Switcher.PanelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitle := widget.NewLabel(
		widget.LabelOpts.Text("Pick a level and a controller", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	contentContainer.AddChild(subtitle)

	for i := range sui.Switcher.Choices {
		contentContainer.AddChild(sui.buildChoiceButton(i))
	}

	contentContainer.AddChild(sui.buildSettingsRow())

	if sui.OnResume != nil {
		sui.resumeButton = sui.newButton("Resume (Esc)", sui.normalFace, func() {
			sui.OnResume()
		})
		contentContainer.AddChild(sui.resumeButton)
	}

	hint := widget.NewLabel(
		widget.LabelOpts.Text("Up/Down to choose, Enter to start", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	)
	contentContainer.AddChild(hint)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SwitcherUI) buildChoiceButton(i int) *widget.Button {
	idx := i // Capture for closure
	button := sui.newButton(systems.ChoiceLabel(sui.Switcher, i), sui.normalFace, func() {
		sui.Switcher.Selected = idx
		sui.UpdateUI()
		if sui.OnPick != nil {
			sui.OnPick(sui.Switcher.Choices[idx])
		}
	})
	sui.choiceButtons = append(sui.choiceButtons, button)
	return button
}

func (sui *SwitcherUI) buildSettingsRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(cfg.Switcher.Spacing),
		)),
	)

	sui.sensitivityButton = sui.newButton(sui.sensitivityText(), sui.smallFace, func() {
		systems.CycleSensitivity(sui.Settings)
		systems.SaveCurrentSettings(sui.Settings)
		sui.UpdateUI()
	})
	row.AddChild(sui.sensitivityButton)

	sui.debugButton = sui.newButton(sui.debugText(), sui.smallFace, func() {
		sui.Settings.Debug = !sui.Settings.Debug
		systems.SaveCurrentSettings(sui.Settings)
		sui.UpdateUI()
	})
	row.AddChild(sui.debugButton)

	return row
}

func (sui *SwitcherUI) newButton(label string, face text.Face, onClick func()) *widget.Button {
	f := face
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Switcher.PanelWidth/2, 24),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &f, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SwitcherUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SwitcherUI) sensitivityText() string {
	return fmt.Sprintf("Mouse: %s", systems.SensitivityStep(sui.Settings.SensitivityIndex).Label)
}

func (sui *SwitcherUI) debugText() string {
	if sui.Settings.Debug {
		return "Debug overlay: on"
	}
	return "Debug overlay: off"
}

// UpdateUI refreshes button labels from the switcher state
func (sui *SwitcherUI) UpdateUI() {
	for i, button := range sui.choiceButtons {
		if textWidget := button.Text(); textWidget != nil {
			textWidget.Label = systems.ChoiceLabel(sui.Switcher, i)
		}
	}
	if sui.sensitivityButton != nil {
		if textWidget := sui.sensitivityButton.Text(); textWidget != nil {
			textWidget.Label = sui.sensitivityText()
		}
	}
	if sui.debugButton != nil {
		if textWidget := sui.debugButton.Text(); textWidget != nil {
			textWidget.Label = sui.debugText()
		}
	}
}

// Update calls the UI's Update method
func (sui *SwitcherUI) Update() {
	sui.UI.Update()
	// Labels follow keyboard selection, but only once widgets are validated
	if sui.initialized {
		sui.UpdateUI()
	}
	sui.initialized = true
}
