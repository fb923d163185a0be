package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzePositive(t *testing.T) {
	a := NewArabicAnalyzer()

	result := a.Analyze("الخدمة ممتازة والتوصيل سريع، شكراً لكم")
	assert.Equal(t, SentimentPositive, result.Sentiment)
	assert.Greater(t, result.Score, 0.0)
	assert.Equal(t, "keywords", result.Source)
	assert.NotEmpty(t, result.Keywords)
}

func TestAnalyzeNegative(t *testing.T) {
	a := NewArabicAnalyzer()

	result := a.Analyze("التطبيق سيء والتوصيل فيه تأخير")
	assert.Equal(t, SentimentNegative, result.Sentiment)
	assert.Less(t, result.Score, 0.0)
}

func TestAnalyzeNeutral(t *testing.T) {
	a := NewArabicAnalyzer()

	result := a.Analyze("استلمت الطلب اليوم")
	assert.Equal(t, SentimentNeutral, result.Sentiment)
	assert.Zero(t, result.Score)
	assert.Empty(t, result.Keywords)
}

func TestAnalyzeMixedLanguage(t *testing.T) {
	a := NewArabicAnalyzer()

	result := a.Analyze("الدعم الفني fast و helpful")
	assert.Equal(t, SentimentPositive, result.Sentiment)
}

func TestAnalyzeDiacriticsDoNotMatter(t *testing.T) {
	a := NewArabicAnalyzer()

	plain := a.Analyze("ممتاز")
	marked := a.Analyze("مُمْتَاز")
	assert.Equal(t, plain.Sentiment, marked.Sentiment)
	assert.Equal(t, SentimentPositive, marked.Sentiment)
}

func TestDetectDialect(t *testing.T) {
	a := NewArabicAnalyzer()

	cases := []struct {
		text string
		want string
	}{
		{"الخدمة زينة وايد", "gulf"},
		{"الاكل كويس اوي خالص", "egyptian"},
		{"الخدمة منيحة كتير هيك", "levantine"},
		{"الخدمة مزيانة بزاف", "maghrebi"},
	}
	for _, tc := range cases {
		result := a.Analyze(tc.text)
		assert.Equal(t, tc.want, result.Dialect, "text %q", tc.text)
	}
}

func TestDetectDialectNoneMatched(t *testing.T) {
	a := NewArabicAnalyzer()
	result := a.Analyze("الخدمة جيدة")
	assert.Empty(t, result.Dialect)
}
