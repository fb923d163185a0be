package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	out := RenderTemplate("مرحباً {{name}}، شاركنا رأيك: {{link}}", "سارة", "https://rayk.sa/s/t/abc")
	assert.Equal(t, "مرحباً سارة، شاركنا رأيك: https://rayk.sa/s/t/abc", out)
}

func TestRenderTemplateSpacedPlaceholders(t *testing.T) {
	out := RenderTemplate("Hi {{ name }}, survey: {{ link }}", "Omar", "https://x.test/s/t/1")
	assert.Equal(t, "Hi Omar, survey: https://x.test/s/t/1", out)
}

func TestRenderTemplateUnknownPlaceholderKept(t *testing.T) {
	out := RenderTemplate("Hello {{nmae}}", "Omar", "")
	assert.Equal(t, "Hello {{nmae}}", out)
}

func TestSurveyLink(t *testing.T) {
	assert.Equal(t, "https://rayk.sa/s/t/tok-1", SurveyLink("https://rayk.sa", "tok-1"))
	assert.Equal(t, "https://rayk.sa/s/t/tok-1", SurveyLink("https://rayk.sa/", "tok-1"))
}

func TestPublicSurveyLink(t *testing.T) {
	assert.Equal(t, "https://rayk.sa/s/nps-2026", PublicSurveyLink("https://rayk.sa/", "nps-2026"))
}
