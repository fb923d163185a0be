package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsArabicName(t *testing.T) {
	assert.True(t, IsArabicName("محمد"))
	assert.True(t, IsArabicName("عبد الرحمن العتيبي"))
	assert.True(t, IsArabicName("  سارة  "))

	assert.False(t, IsArabicName("Mohammed"))
	assert.False(t, IsArabicName("محمد123"))
	assert.False(t, IsArabicName("م"))
	assert.False(t, IsArabicName(""))
}

func TestContainsArabic(t *testing.T) {
	assert.True(t, ContainsArabic("الخدمة ممتازة"))
	assert.True(t, ContainsArabic("great خدمة"))
	assert.False(t, ContainsArabic("great service"))
	assert.False(t, ContainsArabic(""))
}

func TestNormalizeArabic(t *testing.T) {
	// Alef variants unify.
	assert.Equal(t, "اكل", NormalizeArabic("أكل"))
	assert.Equal(t, "اكل", NormalizeArabic("إكل"))
	assert.Equal(t, "اكل", NormalizeArabic("آكل"))
	// Teh marbuta and alef maqsura.
	assert.Equal(t, "خدمه", NormalizeArabic("خدمة"))
	assert.Equal(t, "علي", NormalizeArabic("على"))
	// Tashkeel and tatweel are stripped.
	assert.Equal(t, "ممتاز", NormalizeArabic("مُمْتَاز"))
	assert.Equal(t, "ممتاز", NormalizeArabic("ممتــــاز"))
	// Latin text passes through.
	assert.Equal(t, "great", NormalizeArabic("great"))
}
