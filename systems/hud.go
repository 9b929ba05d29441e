package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/fonts"
	"github.com/spindleworks/ridgerun/motion"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level name, the run timer, and a small contact
// readout along the screen edges.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.UISmall.Get()
	margin := int(cfg.HUD.Margin)
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	// Level name, top-left
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).Current; level != nil {
			text.Draw(screen, level.Name, face, margin, margin+10, cfg.HUD.TextColor)
		}
	}

	// Run timer, top-right
	elapsed := FormatElapsed(GetOrCreateLevelComplete(ecs).Elapsed)
	bounds := text.BoundString(face, elapsed)
	text.Draw(screen, elapsed, face, width-bounds.Dx()-margin, margin+10, cfg.HUD.TextColor)

	// Contact readout, bottom-left
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)
	if physics.Controller == nil {
		return
	}
	readout := contactReadout(physics.Controller.State())
	text.Draw(screen, readout, face, margin, height-margin, cfg.HUD.TextColor)
}

// contactReadout compresses the collision flags into one line.
func contactReadout(st *motion.CollisionState) string {
	s := "contact:"
	if st.Above {
		s += " A"
	}
	if st.Below {
		s += " B"
	}
	if st.Left {
		s += " L"
	}
	if st.Right {
		s += " R"
	}
	if !st.Above && !st.Below && !st.Left && !st.Right {
		s += " -"
	}
	if st.ClimbingSlope || st.DescendingSlope {
		s += fmt.Sprintf("  slope %.1f", st.SlopeAngle)
	}
	return s
}
