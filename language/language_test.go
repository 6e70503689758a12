package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEnglish(t *testing.T) {
	lang := Detect("Create a launch post for our new productivity app targeting remote teams", "")
	assert.Equal(t, English, lang)
}

func TestDetectSpanish(t *testing.T) {
	lang := Detect("Crea una publicación de lanzamiento para nuestra nueva aplicación de productividad dirigida a equipos remotos", "")
	assert.Equal(t, Spanish, lang)
}

func TestForcedOverridesDetection(t *testing.T) {
	lang := Detect("Create a launch post for our new productivity app", "es")
	assert.Equal(t, Spanish, lang)

	lang = Detect("Crea una publicación de lanzamiento", "EN")
	assert.Equal(t, English, lang)
}

func TestUnsupportedForcedFallsBackToDetection(t *testing.T) {
	lang := Detect("Create a launch post for our new productivity app targeting remote teams", "fr")
	assert.Equal(t, English, lang)
}
