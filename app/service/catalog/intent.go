package catalog

import "strings"

type Intent string

const (
	IntentSymptoms    Intent = "symptoms"
	IntentPrecautions Intent = "precautions"
	IntentDiseases    Intent = "diseases"
	IntentGeneral     Intent = "general"
)

// Order matters: the first intent with a keyword hit wins.
var intentKeywords = []struct {
	intent Intent
	words  []string
}{
	{IntentSymptoms, []string{"symptom", "symptoms", "signs", "indications"}},
	{IntentPrecautions, []string{"prevent", "precaution", "precautions", "avoid", "protection", "how to avoid"}},
	{IntentDiseases, []string{"disease", "diseases", "condition", "illness", "what causes"}},
}

func DetectIntent(text string) Intent {
	t := strings.ToLower(text)

	for _, entry := range intentKeywords {
		for _, word := range entry.words {
			if strings.Contains(t, word) {
				return entry.intent
			}
		}
	}

	return IntentGeneral
}
