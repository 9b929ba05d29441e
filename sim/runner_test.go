package sim

import (
	"testing"

	"github.com/spindleworks/ridgerun/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func bptr(v bool) *bool      { return &v }

// flatLevel is one slab of ground wide enough that nothing walks off it.
func flatLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:        "flat",
		PixelWidth:  640,
		PixelHeight: 256,
		TileSize:    16,
		Solids:      []leveldata.Box{{X: 0, Y: 208, W: 640, H: 48}},
		Spawns:      []leveldata.Spawn{{X: 100, Y: 208}},
	}
}

// gapLevel has a pit between two floors with a dead zone at the bottom.
func gapLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:        "gap",
		PixelWidth:  400,
		PixelHeight: 256,
		TileSize:    16,
		Solids: []leveldata.Box{
			{X: 0, Y: 208, W: 120, H: 48},
			{X: 280, Y: 208, W: 120, H: 48},
		},
		Zones: []leveldata.Zone{
			{Kind: leveldata.ZoneDeadly, Box: leveldata.Box{X: 120, Y: 240, W: 160, H: 16}},
		},
		Spawns: []leveldata.Spawn{{X: 100, Y: 208}},
	}
}

func logFailures(t *testing.T, res *Result) {
	t.Helper()
	for _, f := range res.Failures {
		t.Logf("failure: %s", f)
	}
}

func TestRunnerIdleSettles(t *testing.T) {
	sc := &Scenario{Name: "idle", Level: "flat", Ticks: 60}

	res, err := NewRunner(nil).Run(flatLevel(), sc)
	require.NoError(t, err)
	logFailures(t, res)

	assert.True(t, res.Passed())
	assert.Equal(t, "idle", res.Scenario)
	assert.Equal(t, 60, res.Ticks)
	assert.True(t, res.Grounded)
	assert.False(t, res.Dead)
	assert.False(t, res.Completed)
	assert.InDelta(t, 100, res.FinalPos.X, 0.5)
	assert.InDelta(t, 208, res.FinalPos.Y, 0.5)
}

func TestRunnerWalksRight(t *testing.T) {
	sc := &Scenario{
		Name:   "walk-right",
		Level:  "flat",
		Ticks:  120,
		Inputs: []InputSpan{{From: 0, To: 120, X: 1}},
	}

	res, err := NewRunner(nil).Run(flatLevel(), sc)
	require.NoError(t, err)
	logFailures(t, res)

	assert.True(t, res.Passed())
	assert.True(t, res.Grounded)
	assert.False(t, res.Dead)
	// Two seconds at full speed minus the acceleration ramp.
	assert.Greater(t, res.FinalPos.X, 260.0)
	assert.Less(t, res.FinalPos.X, 300.0)
	assert.InDelta(t, 208, res.FinalPos.Y, 0.5)
}

func TestRunnerJumpArcReturnsToGround(t *testing.T) {
	sc := &Scenario{
		Name:   "jump",
		Level:  "flat",
		Ticks:  90,
		Inputs: []InputSpan{{From: 6, To: 36, Jump: true}},
		Checks: []Check{
			{At: 30, Grounded: bptr(false), MaxY: f64(175)},
			{At: 90, Grounded: bptr(true)},
		},
	}

	res, err := NewRunner(nil).Run(flatLevel(), sc)
	require.NoError(t, err)
	logFailures(t, res)

	assert.True(t, res.Passed())
	assert.True(t, res.Grounded)
	assert.InDelta(t, 100, res.FinalPos.X, 1)
	assert.InDelta(t, 208, res.FinalPos.Y, 0.5)
}

func TestRunnerDeadZoneKillsAndRespawns(t *testing.T) {
	sc := &Scenario{
		Name:   "pitfall",
		Level:  "gap",
		Ticks:  150,
		Inputs: []InputSpan{{From: 0, To: 40, X: 1}},
		Checks: []Check{
			{At: 44, Dead: bptr(true)},
		},
	}

	res, err := NewRunner(nil).Run(gapLevel(), sc)
	require.NoError(t, err)
	logFailures(t, res)

	assert.True(t, res.Passed())
	// Back at the spawn point after the respawn delay.
	assert.False(t, res.Dead)
	assert.True(t, res.Grounded)
	assert.InDelta(t, 100, res.FinalPos.X, 1)
	assert.InDelta(t, 208, res.FinalPos.Y, 1)
}

func TestRunnerFinishCompletes(t *testing.T) {
	lvl := flatLevel()
	lvl.Zones = append(lvl.Zones, leveldata.Zone{
		Kind: leveldata.ZoneFinish,
		Box:  leveldata.Box{X: 200, Y: 160, W: 16, H: 48},
	})
	sc := &Scenario{
		Name:   "finish",
		Level:  "flat",
		Ticks:  120,
		Inputs: []InputSpan{{From: 0, To: 120, X: 1}},
		Checks: []Check{
			{At: 120, Complete: bptr(true)},
		},
	}

	res, err := NewRunner(nil).Run(lvl, sc)
	require.NoError(t, err)
	logFailures(t, res)

	assert.True(t, res.Passed())
	assert.True(t, res.Completed)
}

func TestRunnerRejectsLevelWithoutSpawns(t *testing.T) {
	lvl := flatLevel()
	lvl.Spawns = nil

	_, err := NewRunner(nil).Run(lvl, &Scenario{Name: "x", Level: "flat", Ticks: 1})
	assert.Error(t, err)
}
