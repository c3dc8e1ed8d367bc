package scoring

import (
	"encoding/json"
	"math"
)

// EnvironmentalFactors describe the conditions a test session ran under.
// They only ever scale the final score through the validity factor; raw
// metric computation never looks at them.
type EnvironmentalFactors struct {
	WindowSwitches int    `json:"windowSwitches"`
	BrowserInfo    string `json:"browserInfo"`
	ScreenSize     string `json:"screenSize"`
	DeviceType     string `json:"deviceType"`
}

const (
	// Each window switch during a test costs 5% of the composite score,
	// floored at 70%.
	validityPenaltyPerSwitch = 0.05
	validityFactorFloor      = 0.7
)

// validityFactor converts window-switch counts into a multiplicative
// penalty on the composite score.
func validityFactor(env EnvironmentalFactors) float64 {
	factor := 1 - float64(env.WindowSwitches)*validityPenaltyPerSwitch
	return math.Max(validityFactorFloor, factor)
}

// clampScore bounds a computed score to the displayable 0-100 range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func serializeRawData(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("{}")
	}
	return data
}
