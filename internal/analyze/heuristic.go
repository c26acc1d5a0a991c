package analyze

import "context"

// Brightness thresholds for the heuristic backend, in 0-255 luminance.
const (
	lowBrightnessBelow  = 100
	highBrightnessAbove = 180
)

// rednessRatio is the minimum mean-red over mean-green-blue ratio that
// counts as red-dominant skin.
const rednessRatio = 1.35

// HeuristicProvider derives indicators from simple image statistics.
// It needs no external service and is the default backend. The numbers it
// produces are placeholders for a real model, not medical findings.
type HeuristicProvider struct{}

func NewHeuristicProvider() *HeuristicProvider {
	return &HeuristicProvider{}
}

func (p *HeuristicProvider) Name() string {
	return "heuristic"
}

func (p *HeuristicProvider) AnalyzeFace(_ context.Context, imageData []byte) (*Detection, error) {
	img, err := DecodeImage(imageData)
	if err != nil {
		return nil, err
	}

	stats := computeStats(img)

	var indicators []Indicator
	if stats.luminance < lowBrightnessBelow {
		indicators = append(indicators, Indicator{
			Name:       "low_brightness",
			Confidence: 1 - stats.luminance/lowBrightnessBelow,
		})
	}
	if stats.luminance > highBrightnessAbove {
		indicators = append(indicators, Indicator{
			Name:       "high_brightness",
			Confidence: (stats.luminance - highBrightnessAbove) / (255 - highBrightnessAbove),
		})
	}
	if other := (stats.green + stats.blue) / 2; other > 0 && stats.red/other > rednessRatio {
		indicators = append(indicators, Indicator{Name: "redness", Confidence: 0.7})
	}

	return &Detection{Indicators: indicators}, nil
}
