package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/fonts"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateLevelComplete creates the level complete system. While the
// run is live it accumulates the level timer; once the finish zone
// fires it waits for confirm and advances to the next level, or back to
// the menu after the last one.
func NewUpdateLevelComplete(sceneChanger SceneChanger, createWorldScene func(levelIndex int) interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		levelComplete := GetOrCreateLevelComplete(e)

		if !levelComplete.IsComplete {
			if !GetOrCreatePause(e).IsPaused {
				levelComplete.Elapsed += tickDT
			}
			return
		}

		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed ||
			GetAction(input, cfg.ActionJump).JustPressed {
			// The checkpoint for the finished level is spent
			_ = ClearGameProgress()
			if next, ok := nextLevelIndex(e); ok {
				sceneChanger.ChangeScene(createWorldScene(next))
			} else {
				sceneChanger.ChangeScene(createMenuScene())
			}
			return
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			_ = ClearGameProgress()
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// nextLevelIndex reports the level after the current one, if any.
func nextLevelIndex(e *ecs.ECS) (int, bool) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return 0, false
	}
	levelData := components.Level.Get(levelEntry)
	next := levelData.Index + 1
	if next >= len(levelData.Names) {
		return 0, false
	}
	return next, true
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	// Draw title
	titleFont := fonts.UITitle.Get()
	title := "LEVEL COMPLETE"
	titleX := centerTextX(title, titleFont, width)
	text.Draw(screen, title, titleFont, titleX, int(height)/2-40, cfg.BrightOrange)

	// Draw the run time
	msgFont := fonts.UIBold.Get()
	msg := "Time  " + FormatElapsed(levelComplete.Elapsed)
	msgX := centerTextX(msg, msgFont, width)
	text.Draw(screen, msg, msgFont, msgX, int(height)/2, cfg.White)

	// Draw continue hint
	hintFont := fonts.UISmall.Get()
	input := getOrCreateInput(e)
	hint := getLevelCompleteHint(e, input.LastInputMethod)
	hintX := centerTextX(hint, hintFont, width)
	text.Draw(screen, hint, hintFont, hintX, int(height)/2+32, cfg.Pause.TextColorNormal)
}

// FormatElapsed renders seconds as m:ss.cc for the HUD and the finish
// overlay.
func FormatElapsed(seconds float64) string {
	mins := int(seconds) / 60
	secs := seconds - float64(mins*60)
	return fmt.Sprintf("%d:%05.2f", mins, secs)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// getLevelCompleteHint returns the appropriate hint for level complete screen
func getLevelCompleteHint(e *ecs.ECS, method components.InputMethod) string {
	next := "Next Level"
	if _, ok := nextLevelIndex(e); !ok {
		next = "Menu"
	}
	switch method {
	case components.InputPlayStation:
		return "Cross: " + next + "   Circle: Menu"
	case components.InputXbox:
		return "A: " + next + "   B: Menu"
	}
	return "Enter: " + next + "   Esc: Menu"
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{
			IsComplete: false,
		})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or level is complete
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelCompleteCheck(system))
}
