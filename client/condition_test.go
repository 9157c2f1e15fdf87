package client

import "testing"

func TestParseCondition(t *testing.T) {
	cases := map[string]Condition{
		"Clear":        ConditionClear,
		"clear":        ConditionClear,
		"Clouds":       ConditionClouds,
		"Rain":         ConditionRain,
		"Snow":         ConditionSnow,
		"Thunderstorm": ConditionThunderstorm,
		"Drizzle":      ConditionUnknown,
		"":             ConditionUnknown,
	}
	for in, want := range cases {
		if got := ParseCondition(in); got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestConditionIcon(t *testing.T) {
	cases := map[Condition]string{
		ConditionClear:        "sun",
		ConditionClouds:       "cloud",
		ConditionRain:         "cloud-rain",
		ConditionSnow:         "cloud",
		ConditionThunderstorm: "cloud-rain",
		ConditionUnknown:      "sun",
	}
	for c, want := range cases {
		if got := c.Icon(); got != want {
			t.Fatalf("%v: expected icon %q, got %q", c, want, got)
		}
	}
}

func TestConditionGradient(t *testing.T) {
	cases := map[Condition]string{
		ConditionClear:        "from-yellow-400 to-orange-500",
		ConditionClouds:       "from-gray-400 to-gray-600",
		ConditionRain:         "from-blue-400 to-blue-600",
		ConditionSnow:         "from-blue-200 to-blue-400",
		ConditionThunderstorm: "from-yellow-400 to-orange-500",
		ConditionUnknown:      "from-yellow-400 to-orange-500",
	}
	for c, want := range cases {
		if got := c.Gradient(); got != want {
			t.Fatalf("%v: expected gradient %q, got %q", c, want, got)
		}
	}
}

func TestTravelTip(t *testing.T) {
	cases := []struct {
		condition Condition
		temp      int
		want      string
	}{
		{ConditionClear, -5, "Bundle up! It's freezing outside."},
		{ConditionRain, 5, "Dress warmly and consider layers."},
		{ConditionRain, 15, "Don't forget your umbrella!"},
		{ConditionClear, 28, "Perfect weather for outdoor activities!"},
		{ConditionClouds, 33, "Stay hydrated and seek shade during peak hours."},
		{ConditionClouds, 20, "Great weather for exploring!"},
	}
	for _, tc := range cases {
		if got := TravelTip(tc.condition, tc.temp); got != tc.want {
			t.Fatalf("%v at %d: expected %q, got %q", tc.condition, tc.temp, got, tc.want)
		}
	}
}
