package prompt

import (
	"strings"
	"testing"
)

func TestEnhance(t *testing.T) {
	testCases := []struct {
		name   string
		prompt string
		want   string
	}{{
		name:   "bare prompt gets quality lighting and composition",
		prompt: "a red cat",
		want:   "a red cat, highly detailed, 8k resolution, professional quality, natural lighting, well-composed, balanced composition",
	}, {
		name:   "quality and lighting already present",
		prompt: "a photorealistic portrait of an old sailor with natural lighting",
		want:   "a photorealistic portrait of an old sailor with natural lighting",
	}, {
		name:   "uppercase quality keyword is matched case-insensitively",
		prompt: "A HIGHLY DETAILED sketch of a sleeping fox",
		want:   "A HIGHLY DETAILED sketch of a sleeping fox, natural lighting",
	}, {
		name:   "lighting keyword suppresses only the lighting suffix",
		prompt: "castle illuminated at dusk",
		want:   "castle illuminated at dusk, highly detailed, 8k resolution, professional quality, well-composed, balanced composition",
	}, {
		name:   "long prompt without quality keeps composition terms off",
		prompt: "an ancient oak tree standing alone in a misty autumn meadow",
		want:   "an ancient oak tree standing alone in a misty autumn meadow, highly detailed, 8k resolution, professional quality, natural lighting",
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Enhance(tc.prompt)
			if got != tc.want {
				t.Fatalf("Enhance(%q) = %q, want %q", tc.prompt, got, tc.want)
			}
		})
	}
}

func TestEnhanceNeverDuplicatesQualityTerms(t *testing.T) {
	for _, entry := range GenerationKnowledge {
		for _, modifier := range entry.QualityModifiers {
			prompt := "a scene with " + modifier + " style across the frame"
			got := Enhance(prompt)
			if strings.Contains(got, "professional quality") {
				t.Fatalf("prompt with modifier %q still received generic quality terms: %q", modifier, got)
			}
		}
	}
}
