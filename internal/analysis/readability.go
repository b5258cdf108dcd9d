package analysis

import "regexp"

var (
	sentencePattern     = regexp.MustCompile(`[^.!?]+[.!?]+`)
	silentSuffixPattern = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingYPattern     = regexp.MustCompile(`^y`)
	vowelRunPattern     = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// CountSentences counts runs of text closed by terminal punctuation, at
// least 1.
func CountSentences(text string) int {
	n := len(sentencePattern.FindAllStringIndex(text, -1))
	if n == 0 {
		return 1
	}
	return n
}

// CountSyllables estimates syllables for a lowercase word.
func CountSyllables(word string) int {
	if word == "" {
		return 0
	}
	if len(word) <= 3 {
		return 1
	}
	word = silentSuffixPattern.ReplaceAllString(word, "")
	word = leadingYPattern.ReplaceAllString(word, "")
	if n := len(vowelRunPattern.FindAllStringIndex(word, -1)); n > 0 {
		return n
	}
	return 1
}

// GradeLevel is the Flesch-Kincaid grade, floored at 0.
func GradeLevel(words, sentences, syllables int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	grade := 0.39*(float64(words)/float64(sentences)) + 11.8*(float64(syllables)/float64(words)) - 15.59
	if grade < 0 {
		return 0
	}
	return grade
}
