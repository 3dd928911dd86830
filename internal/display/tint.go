package display

// Tint is the card background family for a temperature.
type Tint int

const (
	TintCool Tint = iota
	TintWarm
)

// Background picks the card tint. 30°C and above is warm.
func Background(tempC float64) Tint {
	if tempC >= warmTintMinC {
		return TintWarm
	}
	return TintCool
}

// Hex returns the card background color.
func (t Tint) Hex() string {
	if t == TintWarm {
		return "#FFF9C4"
	}
	return "#E1F5FE"
}

func (t Tint) String() string {
	if t == TintWarm {
		return "warm"
	}
	return "cool"
}
