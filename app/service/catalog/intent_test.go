package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"What are the symptoms of pneumonia?", IntentSymptoms},
		{"Early SIGNS of malaria", IntentSymptoms},
		{"How to avoid dengue?", IntentPrecautions},
		{"precautions for fungal infection", IntentPrecautions},
		{"What causes fever?", IntentDiseases},
		{"Which illness is this?", IntentDiseases},
		{"Tell me about pneumonia", IntentGeneral},
		{"", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.text))
		})
	}
}
