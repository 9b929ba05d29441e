package main

import (
	"flag"
	"image"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spindleworks/ridgerun/assets"
	"github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/fonts"
	"github.com/spindleworks/ridgerun/scenes"
	"github.com/spindleworks/ridgerun/systems"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(startLevel int, skipMenu bool) *Game {
	fonts.LoadFont(fonts.UI, goregular.TTF)
	fonts.LoadFontWithSize(fonts.UIBold, gobold.TTF, 20)
	fonts.LoadFontWithSize(fonts.UITitle, gobold.TTF, 32)
	fonts.LoadFontWithSize(fonts.UISmall, goregular.TTF, 12)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if skipMenu {
		g.scene = scenes.NewPlatformerScene(g, startLevel)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", "", "load this .tmx and its directory siblings from disk, watching for edits")
	overlay := flag.Bool("overlay", false, "start with the ray overlay visible")
	flag.Parse()

	if *overlay {
		config.Debug.Overlay = true
	}

	startLevel := 0
	skipMenu := false
	if *levelPath != "" {
		config.Debug.LevelsDir = filepath.Dir(*levelPath)
		config.Debug.WatchFS = true
		skipMenu = true

		// Jump straight into the named level.
		stem := strings.TrimSuffix(filepath.Base(*levelPath), ".tmx")
		_, names := assets.Loader().MustLoadLevels()
		for i, name := range names {
			if name == stem {
				startLevel = i
				break
			}
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Ridgerun")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(startLevel, skipMenu)); err != nil {
		log.Fatal(err)
	}
}
