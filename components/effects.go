package components

import "github.com/yohamta/donburi"

// SquashStretchData tracks sprite scale deformation for bounce feel.
// Purely visual, collision boxes never change.
type SquashStretchData struct {
	ScaleX, ScaleY   float64 // current scale
	TargetX, TargetY float64 // lerp target (usually 1.0, 1.0)
	LerpSpeed        float64 // how fast to return to normal
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
