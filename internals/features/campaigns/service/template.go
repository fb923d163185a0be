package service

import (
	"strings"
)

// RenderTemplate substitutes {{name}} and {{link}} placeholders. Unknown
// placeholders are left as-is so typos surface in test sends instead of
// silently disappearing.
func RenderTemplate(template, name, link string) string {
	r := strings.NewReplacer(
		"{{name}}", name,
		"{{ name }}", name,
		"{{link}}", link,
		"{{ link }}", link,
	)
	return r.Replace(template)
}

// SurveyLink builds the public survey URL for a delivery token.
func SurveyLink(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/s/t/" + token
}

// PublicSurveyLink builds the tokenless web-channel URL for a survey slug.
func PublicSurveyLink(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/s/" + slug
}
