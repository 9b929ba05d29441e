package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/spindleworks/ridgerun/config"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI holds the ebitenui interface shown while the game is paused.
// The world scene keeps simulating nothing underneath it; the buttons
// only flip scene-level state.
type PauseUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnResume  func()
	OnRestart func()
	OnQuit    func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

func NewPauseUI(onResume, onRestart, onQuit func()) *PauseUI {
	pui := &PauseUI{
		OnResume:  onResume,
		OnRestart: onRestart,
		OnQuit:    onQuit,
	}

	pui.loadFonts()
	pui.buildUI()

	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Sized to fit the 640x360 screen
	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (pui *PauseUI) buildUI() {
	// Root container washes the whole screen with the overlay color so
	// the frozen world stays visible behind the panel.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Pause.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 34, 46, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	handlers := []func(){pui.resume, pui.restart, pui.quit}
	for i, label := range cfg.Pause.MenuOptions {
		handler := handlers[i]
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 26)),
			widget.ButtonOpts.Image(pui.buttonImage()),
			widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				handler()
			}),
		)
		panel.AddChild(button)
	}

	rootContainer.AddChild(panel)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) buttonImage() *widget.ButtonImage {
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

func (pui *PauseUI) resume() {
	if pui.OnResume != nil {
		pui.OnResume()
	}
}

func (pui *PauseUI) restart() {
	if pui.OnRestart != nil {
		pui.OnRestart()
	}
}

func (pui *PauseUI) quit() {
	if pui.OnQuit != nil {
		pui.OnQuit()
	}
}

// Update calls the UI's Update method.
func (pui *PauseUI) Update() {
	pui.UI.Update()
}
