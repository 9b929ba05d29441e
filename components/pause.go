package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. The pause overlay itself is an
// ebitenui panel owned by the world scene; its buttons flip this flag.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
