package analyze

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed prompts/face_analysis.txt
var faceAnalysisPrompt string

// maxImageSize is the maximum dimension sent to LLM backends.
// Smaller images keep token costs down without hurting the analysis.
const maxImageSize = 800

// buildFaceAnalysisPrompt appends the allowed indicator vocabulary to the
// embedded system prompt. Shared across all LLM providers.
func buildFaceAnalysisPrompt(indicators []string) string {
	var b strings.Builder
	b.WriteString(faceAnalysisPrompt)
	for _, name := range indicators {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	return b.String()
}

// parseDetection unmarshals an LLM response into a Detection and drops
// indicators outside the allowed vocabulary or with out-of-range confidence.
func parseDetection(content string, allowed []string) (*Detection, error) {
	var detection Detection
	if err := json.Unmarshal([]byte(content), &detection); err != nil {
		return nil, err
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	kept := detection.Indicators[:0]
	for _, ind := range detection.Indicators {
		if _, ok := allowedSet[ind.Name]; !ok {
			continue
		}
		if ind.Confidence < 0 || ind.Confidence > 1 {
			continue
		}
		kept = append(kept, ind)
	}
	detection.Indicators = kept

	return &detection, nil
}
