package app

import "time"

// TickMsg triggers an animation frame.
type TickMsg time.Time
