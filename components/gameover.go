package components

import "github.com/yohamta/donburi"

// GameOverData records the end of the session. It is created when the
// player is removed.
type GameOverData struct {
	FinalHeight float64
	Tick        int
}

// GameOver is the component type for the end-of-session record
var GameOver = donburi.NewComponentType[GameOverData]()
