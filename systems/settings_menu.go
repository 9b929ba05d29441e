package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/fonts"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	// Handle controls screen separately
	if settings.ShowingControls {
		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionMenuSelect).JustPressed ||
			GetAction(input, cfg.ActionPause).JustPressed {
			settings.ShowingControls = false
		}
		return
	}

	// Navigate up
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		navigateUp(settings)
	}

	// Navigate down
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		navigateDown(settings)
	}

	// Adjust value left/right; the move actions double as menu left/right
	if GetAction(input, cfg.ActionMoveLeft).JustPressed {
		adjustValue(settings, -1)
	}
	if GetAction(input, cfg.ActionMoveRight).JustPressed {
		adjustValue(settings, +1)
	}

	// Select/Enter - for toggles and Back button
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(settings)
	}

	// B/Circle, Start, or Escape to go back
	if GetAction(input, cfg.ActionMenuBack).JustPressed ||
		GetAction(input, cfg.ActionPause).JustPressed {
		closeSettings(settings)
	}
}

// navigateUp moves selection up, skipping hidden options
func navigateUp(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// navigateDown moves selection down, skipping hidden options
func navigateDown(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) + 1) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// isOptionHidden returns true if the option should be hidden
func isOptionHidden(s *components.SettingsMenuData, opt components.SettingsMenuOption) bool {
	// Hide resolution when fullscreen is enabled
	if opt == components.SettingsOptResolution && s.Fullscreen {
		return true
	}
	return false
}

// adjustValue changes the value for the selected option
func adjustValue(s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptFullscreen:
		toggleFullscreen(s)

	case components.SettingsOptResolution:
		cycleResolution(s, direction)

	case components.SettingsOptInputMode:
		numModes := len(cfg.SettingsMenu.InputModes)
		s.InputMode = (s.InputMode + direction + numModes) % numModes

	case components.SettingsOptOverlay:
		s.Overlay = !s.Overlay
	}
}

// toggleFullscreen toggles fullscreen mode
func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// cycleResolution cycles through available resolutions
func cycleResolution(s *components.SettingsMenuData, direction int) {
	numResolutions := len(cfg.SettingsMenu.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions

	// Apply the resolution
	res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// handleSelect handles the select/enter action
func handleSelect(s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptFullscreen:
		toggleFullscreen(s)

	case components.SettingsOptOverlay:
		s.Overlay = !s.Overlay

	case components.SettingsOptControls:
		s.ShowingControls = true

	case components.SettingsOptBack:
		closeSettings(s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(s *components.SettingsMenuData) {
	s.IsOpen = false
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw solid background
	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Render.Background,
		false,
	)

	// Show controls screen if active
	if settings.ShowingControls {
		drawControlsScreen(e, screen, width, height)
		return
	}

	// Get font
	fontFace := fonts.UIBold.Get()
	titleFont := fonts.UITitle.Get()

	// Draw title centered near top
	title := "SETTINGS"
	titleX := centerTextX(title, titleFont, width)
	text.Draw(screen, title, titleFont, titleX, 35, cfg.BrightOrange)

	// Count visible options for layout calculation
	visibleCount := 0
	for opt := components.SettingsOptFullscreen; opt <= components.SettingsOptBack; opt++ {
		if !isOptionHidden(settings, opt) {
			visibleCount++
		}
	}

	// Calculate menu positioning - center vertically in available space
	menuItemHeight := 24.0
	menuItemGap := 10.0
	totalMenuHeight := float64(visibleCount) * (menuItemHeight + menuItemGap)
	startY := (height-totalMenuHeight)/2 + 10

	// Draw each option
	optionIndex := 0
	for opt := components.SettingsOptFullscreen; opt <= components.SettingsOptBack; opt++ {
		if isOptionHidden(settings, opt) {
			continue
		}

		y := startY + float64(optionIndex)*(menuItemHeight+menuItemGap)

		// Determine color based on selection
		textColor := cfg.Pause.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		// Get label and value for this option
		label, value := getOptionDisplay(settings, opt)

		// Draw label on left side (centered layout)
		labelX := int(width/2) - 120
		text.Draw(screen, label, fontFace, labelX, int(y)+int(menuItemHeight), textColor)

		// Draw value on right side (if not Back button)
		if opt != components.SettingsOptBack && opt != components.SettingsOptControls {
			valueX := int(width/2) + 40
			text.Draw(screen, value, fontFace, valueX, int(y)+int(menuItemHeight), textColor)
		} else if opt == components.SettingsOptControls {
			// Draw arrow for Controls option
			valueX := int(width/2) + 100
			text.Draw(screen, value, fontFace, valueX, int(y)+int(menuItemHeight), textColor)
		}

		optionIndex++
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	hintFont := fonts.UISmall.Get()
	hintX := centerTextX(hint, hintFont, width)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// drawControlsScreen renders the controls/button mapping screen
func drawControlsScreen(e *ecs.ECS, screen *ebiten.Image, width, height float64) {
	input := getOrCreateInput(e)
	fontFace := fonts.UIBold.Get()
	titleFont := fonts.UITitle.Get()
	smallFont := fonts.UISmall.Get()

	// Draw title
	title := "CONTROLS"
	titleX := centerTextX(title, titleFont, width)
	text.Draw(screen, title, titleFont, titleX, 35, cfg.BrightOrange)

	// Get control mappings based on input method
	mappings := getControlMappings(input.LastInputMethod)

	// Calculate layout
	startY := 70.0
	lineHeight := 22.0
	labelX := int(width/2) - 100
	valueX := int(width/2) + 20

	for i, mapping := range mappings {
		y := startY + float64(i)*lineHeight
		text.Draw(screen, mapping.Action, fontFace, labelX, int(y), cfg.Pause.TextColorNormal)
		text.Draw(screen, mapping.Button, fontFace, valueX, int(y), cfg.Pause.TextColorSelected)
	}

	// Draw hint at bottom
	hint := getBackHint(input.LastInputMethod)
	hintX := centerTextX(hint, smallFont, width)
	text.Draw(screen, hint, smallFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// controlMapping represents a single control mapping entry
type controlMapping struct {
	Action string
	Button string
}

// getControlMappings returns control mappings for the given input method
func getControlMappings(method components.InputMethod) []controlMapping {
	switch method {
	case components.InputPlayStation:
		return []controlMapping{
			{"Move", "Left Stick / D-Pad"},
			{"Jump", "Cross"},
			{"Drop Through", "D-Pad Down"},
			{"Restart", "Share"},
			{"Pause", "Options"},
		}
	case components.InputXbox:
		return []controlMapping{
			{"Move", "Left Stick / D-Pad"},
			{"Jump", "A"},
			{"Drop Through", "D-Pad Down"},
			{"Restart", "Back"},
			{"Pause", "Start"},
		}
	default: // Keyboard
		return []controlMapping{
			{"Move", "Arrow Keys / A D"},
			{"Jump", "X / W / Space"},
			{"Drop Through", "Down / S"},
			{"Restart", "R"},
			{"Ray Overlay", "F1"},
			{"Pause", "Esc / P"},
		}
	}
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getBackHint returns the hint for going back
func getBackHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation, components.InputXbox:
		return "Press any button to go back"
	}
	return "Press any key to go back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptResolution:
		if s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
			return "Resolution", cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
		}
		return "Resolution", "Unknown"
	case components.SettingsOptInputMode:
		if s.InputMode < len(cfg.SettingsMenu.InputModes) {
			return "Input", cfg.SettingsMenu.InputModes[s.InputMode]
		}
		return "Input", "Unknown"
	case components.SettingsOptOverlay:
		return "Ray Overlay", formatToggle(s.Overlay)
	case components.SettingsOptControls:
		return "Controls", ">"
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// isControllerConnected checks if any gamepad with standard layout is connected
func isControllerConnected() bool {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			return true
		}
	}
	return false
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))

		// Auto-detect input mode based on connected controllers
		inputMode := int(cfg.InputModeKeyboard)
		if isControllerConnected() {
			inputMode = int(cfg.InputModeController)
		}

		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			IsOpen:          false,
			SelectedOption:  components.SettingsOptFullscreen,
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
			InputMode:       inputMode,
			Overlay:         cfg.Debug.Overlay,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings menu overlay
func OpenSettings(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.SelectedOption = components.SettingsOptFullscreen

	// Sync current values
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	settings := GetOrCreateSettingsMenu(e)
	return settings.IsOpen
}
