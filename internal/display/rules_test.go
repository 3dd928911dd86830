package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmoji(t *testing.T) {
	cases := []struct {
		condition string
		want      string
	}{
		{"Sunny", EmojiSunny},
		{"Clear", EmojiSunny},
		{"Partly Cloudy", EmojiCloudy},
		{"Overcast", EmojiCloudy},
		{"Light rain shower", EmojiRain},
		{"Patchy light drizzle", EmojiRain},
		{"Moderate snow", EmojiSnow},
		{"Light sleet", EmojiSnow},
		{"Fog", EmojiDefault},
		{"", EmojiDefault},
		// Sunny is checked before rain.
		{"Rainy and sunny", EmojiSunny},
		// Cloudy is checked before rain and snow.
		{"Cloudy with rain", EmojiCloudy},
	}
	for _, tc := range cases {
		t.Run(tc.condition, func(t *testing.T) {
			assert.Equal(t, tc.want, Emoji(tc.condition))
		})
	}
}

func TestClothing(t *testing.T) {
	cases := []struct {
		name  string
		tempC float64
		want  string
	}{
		{"hot", 30, ShortSleeves},
		{"short sleeves boundary", 25, ShortSleeves},
		{"just below short sleeves", 24.9, LongSleeves},
		{"mild", 20, LongSleeves},
		{"long sleeves boundary", 15, LongSleeves},
		{"just below long sleeves", 14.9, Coat},
		{"cold", 5, Coat},
		{"freezing", -12, Coat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clothing(tc.tempC))
		})
	}
}

func TestCaution(t *testing.T) {
	cases := []struct {
		name      string
		condition string
		uv        float64
		want      string
	}{
		{"rain beats low uv", "Rain", 2, CautionUmbrella},
		{"rain beats high uv", "Heavy rain", 9, CautionUmbrella},
		{"lowercase rain", "Light rain shower", 1, CautionUmbrella},
		{"high uv", "Sunny", 6, CautionUV},
		{"uv threshold is exclusive", "Sunny", 5, CautionNone},
		{"calm", "Partly cloudy", 3, CautionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Caution(tc.condition, tc.uv))
		})
	}
}

func TestBackground(t *testing.T) {
	assert.Equal(t, TintWarm, Background(30))
	assert.Equal(t, TintWarm, Background(35.2))
	assert.Equal(t, TintCool, Background(29.9))
	assert.Equal(t, TintCool, Background(-4))

	assert.Equal(t, "#FFF9C4", TintWarm.Hex())
	assert.Equal(t, "#E1F5FE", TintCool.Hex())
	assert.Equal(t, "warm", TintWarm.String())
}

func TestMoonLabel(t *testing.T) {
	assert.Equal(t, "Waxing", MoonLabel("Waxing Gibbous"))
	assert.Equal(t, "Full", MoonLabel(" Full Moon "))
	assert.Equal(t, "-", MoonLabel("  "))
}
