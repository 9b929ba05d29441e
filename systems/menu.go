package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/fonts"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func(levelIndex int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		// Skip menu input if settings is open
		if IsSettingsOpen(e) {
			return
		}

		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		// Left/right cycles which level the Start option launches
		if menu.Options[menu.SelectedIndex] == components.MainMenuStart {
			if n := menuLevelCount(e); n > 0 {
				if GetAction(input, cfg.ActionMoveLeft).JustPressed {
					menu.LevelIndex = (menu.LevelIndex - 1 + n) % n
				}
				if GetAction(input, cfg.ActionMoveRight).JustPressed {
					menu.LevelIndex = (menu.LevelIndex + 1) % n
				}
			}
		}

		// Handle selection
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createWorldScene(menu.LevelIndex))
			case components.MainMenuSettings:
				OpenSettings(e)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// menuLevelCount reports how many levels the menu can offer.
func menuLevelCount(e *ecs.ECS) int {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return 0
	}
	return len(components.Level.Get(levelEntry).Names)
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	// The settings overlay replaces the menu entirely while open
	if IsSettingsOpen(e) {
		return
	}

	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Render.Background,
		false,
	)

	// Draw title
	titleFont := fonts.UITitle.Get()
	title := "RIDGERUN"
	titleX := centerTextX(title, titleFont, width)
	text.Draw(screen, title, titleFont, titleX, 80, cfg.BrightOrange)

	// Draw menu options
	menuFont := fonts.UIBold.Get()
	totalMenuHeight := float64(len(menu.Options)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height-totalMenuHeight)/2 + 20

	for i, option := range menu.Options {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		// Determine color based on selection
		textColor := cfg.Pause.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Pause.TextColorSelected
		}

		label := getOptionLabel(e, menu, option)
		x := centerTextX(label, menuFont, width)

		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.UISmall.Get()
	hintX := centerTextX(hint, hintFont, width)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Left/Right: Level   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   Left/Right: Level   A: Select"
	}
	return "Arrows: Navigate   Left/Right: Level   Enter: Select"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(e *ecs.ECS, menu *components.MenuData, option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		if levelEntry, ok := components.Level.First(e.World); ok {
			names := components.Level.Get(levelEntry).Names
			if menu.LevelIndex < len(names) {
				return "Start  < " + names[menu.LevelIndex] + " >"
			}
		}
		return "Start"
	case components.MainMenuSettings:
		return "Settings"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		options := []components.MainMenuOption{
			components.MainMenuStart,
			components.MainMenuSettings,
			components.MainMenuExit,
		}

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			Options:       options,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
