package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles
type SettingsData struct {
	Debug bool // draw collision bodies
}

var Settings = donburi.NewComponentType[SettingsData]()
