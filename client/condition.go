package client

import "strings"

// Condition is the coarse weather group reported by the API. The zero
// value renders the same as clear skies, matching the card's default arm.
type Condition int

const (
	ConditionUnknown Condition = iota
	ConditionClear
	ConditionClouds
	ConditionRain
	ConditionSnow
	ConditionThunderstorm
)

func ParseCondition(s string) Condition {
	switch strings.ToLower(s) {
	case "clear":
		return ConditionClear
	case "clouds":
		return ConditionClouds
	case "rain":
		return ConditionRain
	case "snow":
		return ConditionSnow
	case "thunderstorm":
		return ConditionThunderstorm
	default:
		return ConditionUnknown
	}
}

func (c Condition) String() string {
	switch c {
	case ConditionClear:
		return "Clear"
	case ConditionClouds:
		return "Clouds"
	case ConditionRain:
		return "Rain"
	case ConditionSnow:
		return "Snow"
	case ConditionThunderstorm:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}

// Icon names the glyph the weather card draws.
func (c Condition) Icon() string {
	switch c {
	case ConditionClouds, ConditionSnow:
		return "cloud"
	case ConditionRain, ConditionThunderstorm:
		return "cloud-rain"
	default:
		return "sun"
	}
}

// Gradient is the card's background color pair.
func (c Condition) Gradient() string {
	switch c {
	case ConditionClouds:
		return "from-gray-400 to-gray-600"
	case ConditionRain:
		return "from-blue-400 to-blue-600"
	case ConditionSnow:
		return "from-blue-200 to-blue-400"
	default:
		return "from-yellow-400 to-orange-500"
	}
}

// TravelTip picks the advice line under the card. Temperature rules win
// over condition rules at the extremes.
func TravelTip(c Condition, temperature int) string {
	switch {
	case temperature < 0:
		return "Bundle up! It's freezing outside."
	case temperature < 10:
		return "Dress warmly and consider layers."
	case c == ConditionRain:
		return "Don't forget your umbrella!"
	case c == ConditionClear && temperature > 25:
		return "Perfect weather for outdoor activities!"
	case temperature > 30:
		return "Stay hydrated and seek shade during peak hours."
	default:
		return "Great weather for exploring!"
	}
}
