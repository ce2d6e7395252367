package prompt

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	minTokensForComposition = 5
)

var (
	qualitySuffix    = []string{"highly detailed", "8k resolution", "professional quality"}
	lightingKeywords = []string{"light", "lighting", "illuminat"}
	compositionTerms = []string{"well-composed", "balanced composition"}
	lightingSuffix   = "natural lighting"
	foldCaser        = cases.Fold()
)

// Enhance augments a raw prompt with quality, lighting, and composition
// modifiers that the prompt does not already carry. Deterministic; checks
// are applied in the fixed order quality, lighting, composition and the
// additions are appended as one comma-joined suffix.
func Enhance(userPrompt string) string {
	var enhancements []string

	if !hasQualityModifier(userPrompt) {
		enhancements = append(enhancements, qualitySuffix...)
	}

	if !mentionsLighting(userPrompt) {
		enhancements = append(enhancements, lightingSuffix)
	}

	if len(strings.Fields(userPrompt)) < minTokensForComposition {
		enhancements = append(enhancements, compositionTerms...)
	}

	if len(enhancements) == 0 {
		return userPrompt
	}
	return userPrompt + ", " + strings.Join(enhancements, ", ")
}

// hasQualityModifier reports whether the prompt already contains any quality
// modifier from the knowledge base, using Unicode case folding.
func hasQualityModifier(userPrompt string) bool {
	folded := foldCaser.String(userPrompt)
	for _, entry := range GenerationKnowledge {
		for _, modifier := range entry.QualityModifiers {
			if strings.Contains(folded, foldCaser.String(modifier)) {
				return true
			}
		}
	}
	return false
}

func mentionsLighting(userPrompt string) bool {
	folded := foldCaser.String(userPrompt)
	for _, keyword := range lightingKeywords {
		if strings.Contains(folded, keyword) {
			return true
		}
	}
	return false
}
