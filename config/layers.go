package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer every entity and renderer goes on. The demo
// draws world, HUD, and overlays in renderer registration order on a
// single layer.
const Default ecs.LayerID = ecs.LayerDefault
