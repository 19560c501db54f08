package model

// Comfort bands applied to the temperature for presentation. Classification
// never feeds back into the acquisition or caching path.
const (
	CoolBelowC = 18.0
	HotAboveC  = 28.0
)

const (
	LevelCool   = "cool"
	LevelNormal = "normal"
	LevelHot    = "hot"
)

// Classify maps a temperature to its comfort band.
func Classify(tempC float64) string {
	switch {
	case tempC < CoolBelowC:
		return LevelCool
	case tempC > HotAboveC:
		return LevelHot
	default:
		return LevelNormal
	}
}
