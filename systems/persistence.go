package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	InputMode       int  `json:"inputMode"`
	Overlay         bool `json:"overlay"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ridgerun",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		InputMode:       s.InputMode,
		Overlay:         s.Overlay,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during initial game startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}

	if saved.Overlay {
		cfg.Debug.Overlay = true
	}
}

// SavedGameProgress remembers the last checkpoint reached per level,
// keyed by level name so reordering the level list never corrupts a save.
type SavedGameProgress struct {
	LevelName        string  `json:"levelName"`
	CheckpointName   string  `json:"checkpointName"`
	CheckpointSpawnX float64 `json:"checkpointSpawnX"`
	CheckpointSpawnY float64 `json:"checkpointSpawnY"`
}

func LoadGameProgress() (*SavedGameProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedGameProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

func SaveGameProgress(levelName string, checkpoint *components.ActiveCheckpointData) error {
	if !gdataInitialized || gdataManager == nil || checkpoint == nil {
		return nil
	}

	progress := &SavedGameProgress{
		LevelName:        levelName,
		CheckpointName:   checkpoint.Name,
		CheckpointSpawnX: checkpoint.SpawnX,
		CheckpointSpawnY: checkpoint.SpawnY,
	}

	data, err := json.Marshal(progress)
	if err != nil {
		log.Printf("Warning: Could not serialize game progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save game progress: %v", err)
		return err
	}

	return nil
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil || len(data) == 0 {
		return false
	}

	return true
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	// Save empty/nil data to clear the progress
	if err := gdataManager.SaveItem("progress", nil); err != nil {
		log.Printf("Warning: Could not clear game progress: %v", err)
		return err
	}

	return nil
}
