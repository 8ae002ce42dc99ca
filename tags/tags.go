package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Platform     = donburi.NewTag().SetName("Platform")
	DamageSource = donburi.NewTag().SetName("DamageSource")
	Spike        = donburi.NewTag().SetName("Spike")
	Enemy        = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for collision bodies
const (
	ResolvPlayer   = "player"
	ResolvPlatform = "platform"
	ResolvHazard   = "hazard"
)
