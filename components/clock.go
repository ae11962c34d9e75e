package components

import "github.com/yohamta/donburi"

type ClockData struct {
	Delta float64 // seconds
	Frame uint64
}

var Clock = donburi.NewComponentType[ClockData]()
