package sim

import (
	"fmt"

	"github.com/spindleworks/ridgerun/archetypes"
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/shared/gamemath"
	"github.com/spindleworks/ridgerun/shared/leveldata"
	"github.com/spindleworks/ridgerun/systems"
	"github.com/spindleworks/ridgerun/systems/factory"
	"github.com/spindleworks/ridgerun/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Failure is one unmet expectation from a scenario run.
type Failure struct {
	Tick   int
	Reason string
}

func (f Failure) String() string {
	return fmt.Sprintf("tick %d: %s", f.Tick, f.Reason)
}

// Result summarizes one scenario run. FinalPos is the player's feet.
type Result struct {
	Scenario  string
	Ticks     int
	FinalPos  gamemath.Vec2
	Grounded  bool
	Dead      bool
	Completed bool
	Failures  []Failure
}

func (r *Result) Passed() bool { return len(r.Failures) == 0 }

// stateLogEvery is the tick interval between debug state lines, one
// per simulated second at the fixed step.
const stateLogEvery = 60

// Runner drives the gameplay systems at the fixed step with scripted
// input standing in for the keyboard.
type Runner struct {
	log *zap.Logger
}

func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{log: logger}
}

// Run builds the level's world, spawns the player at the first spawn
// point, and steps the scenario to completion.
func (r *Runner) Run(lvl *leveldata.Level, sc *Scenario) (*Result, error) {
	if len(lvl.Spawns) == 0 {
		return nil, fmt.Errorf("level %s has no spawn points", lvl.Name)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Scripted input runs first, exactly where the keyboard reader
	// would. The tick counter is shared with the loop below.
	tick := 0
	e.AddSystem(func(e *ecs.ECS) {
		applyScriptedInput(e, sc.InputAt(tick))
	})
	e.AddSystem(systems.UpdatePlatforms)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateTriggers)

	levelEntry := archetypes.Level.Spawn(e)
	components.Level.Set(levelEntry, &components.LevelData{
		Current: lvl,
		Names:   []string{lvl.Name},
		Levels:  map[string]*leveldata.Level{lvl.Name: lvl},
	})

	w := world.FromLevel(lvl)
	factory.CreateSpace(e, lvl.PixelWidth, lvl.PixelHeight, cfg.C.TileSize, cfg.C.TileSize)
	for _, def := range lvl.Platforms {
		factory.CreatePlatform(e, w, def)
	}
	player := factory.CreatePlayer(e, w, lvl.Spawns[0].X, lvl.Spawns[0].Y)
	for _, z := range lvl.Zones {
		switch z.Kind {
		case leveldata.ZoneCheckpoint:
			factory.CreateCheckpoint(e, z.Name, z.Box.X, z.Box.Y, z.Box.W, z.Box.H)
		case leveldata.ZoneDeadly:
			factory.CreateDeadZone(e, z.Box.X, z.Box.Y, z.Box.W, z.Box.H)
		case leveldata.ZoneFinish:
			factory.CreateFinish(e, z.Box.X, z.Box.Y, z.Box.W, z.Box.H)
		}
	}

	checksAt := make(map[int][]Check, len(sc.Checks))
	for _, c := range sc.Checks {
		checksAt[c.At] = append(checksAt[c.At], c)
	}

	res := &Result{Scenario: sc.Name}
	r.log.Info("scenario start",
		zap.String("scenario", sc.Name),
		zap.String("level", lvl.Name),
		zap.Int("ticks", sc.Ticks),
	)

	for ; tick < sc.Ticks; tick++ {
		e.Update()
		res.Ticks = tick + 1
		if res.Ticks%stateLogEvery == 0 {
			p := components.Physics.Get(player)
			pos := feet(p)
			r.log.Debug("tick state",
				zap.String("scenario", sc.Name),
				zap.Int("tick", res.Ticks),
				zap.Float64("x", pos.X),
				zap.Float64("y", pos.Y),
				zap.Bool("grounded", p.Controller.State().Below),
			)
		}
		for _, c := range checksAt[tick+1] {
			r.evaluate(e, player, c, tick+1, res)
		}
	}

	physics := components.Physics.Get(player)
	playerData := components.Player.Get(player)
	res.FinalPos = feet(physics)
	res.Grounded = physics.Controller.State().Below
	res.Dead = playerData.Dead
	res.Completed = systems.IsLevelComplete(e)

	r.log.Info("scenario done",
		zap.String("scenario", sc.Name),
		zap.Int("ticks", res.Ticks),
		zap.Float64("x", res.FinalPos.X),
		zap.Float64("y", res.FinalPos.Y),
		zap.Bool("grounded", res.Grounded),
		zap.Bool("dead", res.Dead),
		zap.Bool("complete", res.Completed),
		zap.Int("failures", len(res.Failures)),
	)
	return res, nil
}

func (r *Runner) evaluate(e *ecs.ECS, player *donburi.Entry, c Check, tick int, res *Result) {
	physics := components.Physics.Get(player)
	playerData := components.Player.Get(player)
	pos := feet(physics)
	grounded := physics.Controller.State().Below

	fail := func(format string, args ...any) {
		reason := fmt.Sprintf(format, args...)
		res.Failures = append(res.Failures, Failure{Tick: tick, Reason: reason})
		r.log.Warn("check failed",
			zap.String("scenario", res.Scenario),
			zap.Int("tick", tick),
			zap.String("reason", reason),
		)
	}

	if c.MinX != nil && pos.X < *c.MinX {
		fail("x=%.2f below min %.2f", pos.X, *c.MinX)
	}
	if c.MaxX != nil && pos.X > *c.MaxX {
		fail("x=%.2f above max %.2f", pos.X, *c.MaxX)
	}
	if c.MinY != nil && pos.Y < *c.MinY {
		fail("y=%.2f above min %.2f", pos.Y, *c.MinY)
	}
	if c.MaxY != nil && pos.Y > *c.MaxY {
		fail("y=%.2f below max %.2f", pos.Y, *c.MaxY)
	}
	if c.Grounded != nil && grounded != *c.Grounded {
		fail("grounded=%v, want %v", grounded, *c.Grounded)
	}
	if c.Dead != nil && playerData.Dead != *c.Dead {
		fail("dead=%v, want %v", playerData.Dead, *c.Dead)
	}
	if c.Complete != nil && systems.IsLevelComplete(e) != *c.Complete {
		fail("complete=%v, want %v", systems.IsLevelComplete(e), *c.Complete)
	}
}

// feet returns the bottom-center of the player's box, the point level
// designers reason about.
func feet(physics *components.PhysicsData) gamemath.Vec2 {
	b := physics.Controller.Bounds()
	return gamemath.Vec2{X: b.Center().X, Y: b.Max.Y}
}

// applyScriptedInput rolls the input frames forward the way the
// keyboard reader does, with the span's held actions as this frame.
func applyScriptedInput(e *ecs.ECS, span InputSpan) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	input := components.Input.Get(entry)

	input.Previous = input.Current

	var current [cfg.ActionCount]bool
	current[cfg.ActionMoveLeft] = span.X < 0
	current[cfg.ActionMoveRight] = span.X > 0
	current[cfg.ActionJump] = span.Jump
	current[cfg.ActionDown] = span.Down
	input.Current = current
}
