package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFallsBackToEnglish(t *testing.T) {
	// Unknown locale resolves entirely in English.
	assert.Equal(t, Text("en", "welcome"), Text("xx", "welcome"))

	// Keys missing from a locale fall back per key.
	assert.Equal(t, Text("en", "question_sent"), Text("ru", "question_sent"))

	// Present keys resolve in the requested locale.
	assert.NotEqual(t, Text("en", "welcome"), Text("ru", "welcome"))
}

func TestTextfSubstitutes(t *testing.T) {
	got := Textf("en", "describe_needs", "⚡ Solidity Smart Contract")
	assert.Contains(t, got, "⚡ Solidity Smart Contract")
	assert.NotContains(t, got, "%s")
}

func TestIsSupported(t *testing.T) {
	for _, locale := range Locales {
		assert.True(t, IsSupported(locale), "locale %s", locale)
	}
	assert.False(t, IsSupported("xx"))
	assert.False(t, IsSupported(""))
}

func TestEveryLocaleCoversCoreKeys(t *testing.T) {
	coreKeys := []string{
		"welcome", "what_question", "send_project_id", "invalid_id",
		"how_help", "choose_service", "describe_needs", "thanks_contact",
		"enter_project_id", "project_not_found", "language_changed",
		"select_language", "collecting_msgs",
	}

	for _, locale := range Locales {
		for _, key := range coreKeys {
			got := Text(locale, key)
			assert.NotEmpty(t, got, "locale %s key %s", locale, key)
			if strings.Contains(Text("en", key), "%s") {
				assert.Contains(t, got, "%s", "locale %s key %s must keep its placeholder", locale, key)
			}
		}
	}
}
