package models

import "testing"

func TestSupportedModel(t *testing.T) {
	for _, id := range ModelOptions {
		if !SupportedModel(id) {
			t.Errorf("Expected %q to be supported", id)
		}
	}

	for _, id := range []string{"", "unsupported-model-x", "gemma2-9b-it", "LLAMA-3.1-8B-INSTANT"} {
		if SupportedModel(id) {
			t.Errorf("Expected %q to be rejected", id)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	def := DefaultSettings()
	if !SupportedModel(def.Model) {
		t.Errorf("Default model %q must be on the allow-list", def.Model)
	}
	if def.Temperature < TemperatureMin || def.Temperature > TemperatureMax {
		t.Errorf("Default temperature %v out of range", def.Temperature)
	}
	if def.MaxTokens < MaxTokensMin || def.MaxTokens > MaxTokensMax {
		t.Errorf("Default max tokens %d out of range", def.MaxTokens)
	}
}
