package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptFullscreen SettingsMenuOption = iota
	SettingsOptResolution
	SettingsOptInputMode
	SettingsOptOverlay
	SettingsOptControls
	SettingsOptBack
)

// SettingsMenuData stores the current state of the settings menu overlay
type SettingsMenuData struct {
	IsOpen          bool
	SelectedOption  SettingsMenuOption
	ShowingControls bool // True when displaying the controls screen

	// Current settings values
	Fullscreen      bool
	ResolutionIndex int
	InputMode       int  // 0 = Keyboard, 1 = Controller
	Overlay         bool // draw the ray/collider debug overlay in game
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
