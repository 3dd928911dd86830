// Package display maps raw weather fields to user-facing hints.
package display

import "strings"

// Default hint values.
const (
	EmojiSunny   = "☀️"
	EmojiCloudy  = "☁️"
	EmojiRain    = "☔"
	EmojiSnow    = "☃️"
	EmojiDefault = "🌡️"

	ShortSleeves = "short sleeves"
	LongSleeves  = "long sleeves"
	Coat         = "coat"

	CautionUmbrella = "bring an umbrella"
	CautionUV       = "watch for UV"
	CautionNone     = "good weather"
)

// Threshold temperatures in °C. Each band includes its lower bound.
const (
	warmTintMinC     = 30.0
	shortSleevesMinC = 25.0
	longSleevesMinC  = 15.0
	uvCautionAbove   = 5.0
)

// rule pairs a predicate with its result. Tables are evaluated top-down and
// the first match wins.
type rule[In, Out any] struct {
	match  func(In) bool
	result Out
}

func firstMatch[In, Out any](rules []rule[In, Out], in In, fallback Out) Out {
	for _, r := range rules {
		if r.match(in) {
			return r.result
		}
	}
	return fallback
}

// containsAny matches lower-cased text against any keyword.
func containsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}

func atLeast(floor float64) func(float64) bool {
	return func(v float64) bool { return v >= floor }
}

var emojiRules = []rule[string, string]{
	{containsAny("sunny", "clear"), EmojiSunny},
	{containsAny("cloudy", "overcast"), EmojiCloudy},
	{containsAny("rain", "drizzle"), EmojiRain},
	{containsAny("snow", "sleet"), EmojiSnow},
}

var clothingRules = []rule[float64, string]{
	{atLeast(shortSleevesMinC), ShortSleeves},
	{atLeast(longSleevesMinC), LongSleeves},
}

// conditions carries the inputs of the caution table.
type conditions struct {
	text string
	uv   float64
}

var cautionRules = []rule[conditions, string]{
	{func(c conditions) bool { return strings.Contains(c.text, "rain") }, CautionUmbrella},
	{func(c conditions) bool { return c.uv > uvCautionAbove }, CautionUV},
}

// Emoji returns the icon for a provider condition text.
func Emoji(condition string) string {
	return firstMatch(emojiRules, strings.ToLower(condition), EmojiDefault)
}

// Clothing suggests what to wear at tempC.
func Clothing(tempC float64) string {
	return firstMatch(clothingRules, tempC, Coat)
}

// Caution returns the single guidance note for the current conditions.
// Rain matching is case-insensitive, like Emoji.
func Caution(condition string, uv float64) string {
	return firstMatch(cautionRules, conditions{text: strings.ToLower(condition), uv: uv}, CautionNone)
}

// MoonLabel shortens a moon phase name to its first word.
func MoonLabel(phase string) string {
	fields := strings.Fields(phase)
	if len(fields) == 0 {
		return "-"
	}
	return fields[0]
}
