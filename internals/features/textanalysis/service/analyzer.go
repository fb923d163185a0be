package service

import (
	"strings"

	helper "rayk_backend/internals/helpers"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// AnalysisResult is stored as-is in the feedback analysis JSONB column.
type AnalysisResult struct {
	Sentiment Sentiment `json:"sentiment"`
	Score     float64   `json:"score"` // -1..1
	Dialect   string    `json:"dialect,omitempty"`
	Keywords  []string  `json:"keywords,omitempty"`
	Source    string    `json:"source"` // "keywords" or "llm"
}

// ArabicAnalyzer scores Arabic (and mixed Arabic/English) feedback text by
// keyword matching. Keywords are stored in normalized form (see
// helper.NormalizeArabic) so diacritics and letter variants do not matter.
type ArabicAnalyzer struct {
	positive map[string]struct{}
	negative map[string]struct{}
	dialects map[string][]string
}

func NewArabicAnalyzer() *ArabicAnalyzer {
	a := &ArabicAnalyzer{
		positive: make(map[string]struct{}),
		negative: make(map[string]struct{}),
	}
	for _, w := range []string{
		"ممتاز", "رائع", "جميل", "شكرا", "سريع", "محترم", "مفيد", "حلو",
		"افضل", "احسن", "سعيد", "راضي", "يعطيكم", "العافيه", "مره", "تمام",
		"excellent", "great", "good", "amazing", "fast", "helpful", "love",
	} {
		a.positive[helper.NormalizeArabic(w)] = struct{}{}
	}
	for _, w := range []string{
		"سيء", "بطيء", "رديء", "مشكله", "تاخير", "غالي", "زفت", "خايس",
		"محبط", "زعلان", "غاضب", "اسوا", "مقرف", "فاشل", "نصب", "احتيال",
		"bad", "slow", "terrible", "problem", "expensive", "worst", "awful",
	} {
		a.negative[helper.NormalizeArabic(w)] = struct{}{}
	}
	a.dialects = map[string][]string{
		"gulf":      {"وايد", "مره", "زين", "ماشي الحال", "شفيك", "ابي", "ابغى"},
		"egyptian":  {"اوي", "خالص", "كويس", "ازيك", "عايز", "مش", "ايه"},
		"levantine": {"كتير", "منيح", "هيك", "شو", "بدي", "ليش", "هلق"},
		"maghrebi":  {"بزاف", "مزيان", "واش", "بغيت", "دابا", "شحال"},
	}
	for dialect, words := range a.dialects {
		normalized := make([]string, len(words))
		for i, w := range words {
			normalized[i] = helper.NormalizeArabic(w)
		}
		a.dialects[dialect] = normalized
	}
	return a
}

// Analyze tokenizes on whitespace/punctuation and counts keyword hits.
// score = (pos-neg)/(pos+neg); ties and no-hits are neutral.
func (a *ArabicAnalyzer) Analyze(text string) AnalysisResult {
	normalized := helper.NormalizeArabic(strings.ToLower(text))
	tokens := tokenize(normalized)

	var pos, neg int
	var matched []string
	for _, tok := range tokens {
		if _, ok := a.positive[tok]; ok {
			pos++
			matched = append(matched, tok)
		}
		if _, ok := a.negative[tok]; ok {
			neg++
			matched = append(matched, tok)
		}
	}

	result := AnalysisResult{
		Sentiment: SentimentNeutral,
		Dialect:   a.detectDialect(normalized),
		Keywords:  matched,
		Source:    "keywords",
	}
	total := pos + neg
	if total == 0 {
		return result
	}
	result.Score = float64(pos-neg) / float64(total)
	if pos > neg {
		result.Sentiment = SentimentPositive
	} else if neg > pos {
		result.Sentiment = SentimentNegative
	}
	return result
}

// detectDialect returns the dialect with the most marker hits, empty when
// nothing matched.
func (a *ArabicAnalyzer) detectDialect(normalized string) string {
	best, bestHits := "", 0
	for dialect, markers := range a.dialects {
		hits := 0
		for _, m := range markers {
			if strings.Contains(normalized, m) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = dialect, hits
		}
	}
	return best
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '.', ',', '!', '?', '؟', '،', ':', ';', '(', ')', '"', '\'':
			return true
		}
		return false
	})
}
