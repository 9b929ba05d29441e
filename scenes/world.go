package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spindleworks/ridgerun/assets"
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/shared/leveldata"
	"github.com/spindleworks/ridgerun/systems"
	"github.com/spindleworks/ridgerun/systems/factory"
	"github.com/spindleworks/ridgerun/ui"
	"github.com/spindleworks/ridgerun/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level: the raycast collision world, the
// player, platforms, trigger volumes, and the pause panel.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	pauseUI      *ui.PauseUI
	watcher      *assets.Watcher
	once         sync.Once
}

// NewPlatformerScene creates a scene for the level at the given index.
func NewPlatformerScene(sc SceneChanger, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	// Dev reload: a changed .tmx rebuilds the whole scene.
	if ps.watcher != nil {
		select {
		case name, ok := <-ps.watcher.Events:
			if ok {
				log.Printf("Level file changed: %s, reloading", name)
				ps.dispose()
				ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.levelIndex))
				return
			}
		case err, ok := <-ps.watcher.Errors:
			if ok {
				log.Printf("Warning: level watcher: %v", err)
			}
		default:
		}
	}

	ps.ecs.Update()

	if systems.GetOrCreatePause(ps.ecs).IsPaused {
		ps.pauseUI.Update()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.GetOrCreatePause(ps.ecs).IsPaused {
		ps.pauseUI.UI.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	createWorldScene := func(levelIndex int) interface{} {
		ps.dispose()
		return NewPlatformerScene(ps.sceneChanger, levelIndex)
	}
	createMenuScene := func() interface{} {
		ps.dispose()
		return NewMenuScene(ps.sceneChanger)
	}

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebug)

	// Game systems wrapped with pause and level complete checks.
	// Platforms move first so riders see a settled surface when their
	// own rays go out.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTriggers))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Runs always: it owns the post-finish flow back to menu or onward.
	e.AddSystem(systems.NewUpdateLevelComplete(ps.sceneChanger, createWorldScene, createMenuScene))

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawLevelComplete)

	ps.ecs = e

	// Load level data first; everything else derives from it.
	levelEntry := factory.CreateLevelAtIndex(e, ps.levelIndex)
	levelData := components.Level.Get(levelEntry)
	lvl := levelData.Current
	ps.levelIndex = levelData.Index

	// Raycast world from the level geometry.
	w := world.FromLevel(lvl)

	// Trigger space sized to the level.
	factory.CreateSpace(e, lvl.PixelWidth, lvl.PixelHeight, cfg.C.TileSize, cfg.C.TileSize)

	factory.CreateCamera(e)

	for _, def := range lvl.Platforms {
		factory.CreatePlatform(e, w, def)
	}

	// Resume from a saved checkpoint when it belongs to this level.
	spawnX, spawnY := ps.pickSpawn(lvl, levelData)

	factory.CreatePlayer(e, w, spawnX, spawnY)

	for _, z := range lvl.Zones {
		switch z.Kind {
		case leveldata.ZoneCheckpoint:
			cp := factory.CreateCheckpoint(e, z.Name, z.Box.X, z.Box.Y, z.Box.W, z.Box.H)
			if levelData.ActiveCheckpoint != nil && levelData.ActiveCheckpoint.Name == z.Name {
				components.Checkpoint.Get(cp).Activated = true
			}
		case leveldata.ZoneDeadly:
			factory.CreateDeadZone(e, z.Box.X, z.Box.Y, z.Box.W, z.Box.H)
		case leveldata.ZoneFinish:
			factory.CreateFinish(e, z.Box.X, z.Box.Y, z.Box.W, z.Box.H)
		}
	}

	// Snap camera to the player's start position to prevent panning
	// in from (0,0).
	systems.SnapCamera(e)

	ps.pauseUI = ui.NewPauseUI(
		func() { systems.GetOrCreatePause(ps.ecs).IsPaused = false },
		func() {
			if err := systems.ClearGameProgress(); err != nil {
				log.Printf("Warning: Could not clear progress: %v", err)
			}
			ps.sceneChanger.ChangeScene(createWorldScene(ps.levelIndex))
		},
		func() { ps.sceneChanger.ChangeScene(createMenuScene()) },
	)

	if cfg.Debug.WatchFS && cfg.Debug.LevelsDir != "" {
		watcher, err := assets.NewWatcher(cfg.Debug.LevelsDir)
		if err != nil {
			log.Printf("Warning: level watcher disabled: %v", err)
		} else {
			ps.watcher = watcher
		}
	}
}

// pickSpawn returns the player start for this run: the saved checkpoint
// when one exists for this level, the level's first spawn otherwise.
func (ps *PlatformerScene) pickSpawn(lvl *leveldata.Level, levelData *components.LevelData) (float64, float64) {
	if len(lvl.Spawns) == 0 {
		panic("no spawn points defined in level " + lvl.Name)
	}
	spawnX, spawnY := lvl.Spawns[0].X, lvl.Spawns[0].Y

	saved, err := systems.LoadGameProgress()
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return spawnX, spawnY
	}
	if saved == nil || saved.LevelName != lvl.Name {
		return spawnX, spawnY
	}

	levelData.ActiveCheckpoint = &components.ActiveCheckpointData{
		Name:   saved.CheckpointName,
		SpawnX: saved.CheckpointSpawnX,
		SpawnY: saved.CheckpointSpawnY,
	}
	return saved.CheckpointSpawnX, saved.CheckpointSpawnY
}

func (ps *PlatformerScene) dispose() {
	if ps.watcher != nil {
		_ = ps.watcher.Close()
		ps.watcher = nil
	}
}
