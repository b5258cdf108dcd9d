package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/redlytics/internal/corpus"
	"github.com/spacesedan/redlytics/internal/models"
)

const (
	TOP_WORDS       = 50
	MAX_CONTEXTS    = 5
	CONTEXT_RADIUS  = 50
	MIN_WORD_LENGTH = 3
)

var wordPattern = regexp.MustCompile(`\b[a-z']+\b`)

func words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

type candidate struct {
	text  string
	df    int
	score float64
}

func analyzeVocabulary(comments []models.NormalizedComment) models.Vocabulary {
	vocab := models.Vocabulary{TopWords: []models.WordStat{}}
	if len(comments) == 0 {
		return vocab
	}

	bodies := make([]string, len(comments))
	tokenSets := make([]map[string]struct{}, len(comments))
	occurrences := map[string]int{}
	var all []string

	for i, c := range comments {
		bodies[i] = c.Body
		toks := words(c.Body)
		set := make(map[string]struct{}, len(toks))
		for _, w := range toks {
			set[w] = struct{}{}
			occurrences[w]++
		}
		tokenSets[i] = set
		all = append(all, toks...)
	}
	if len(all) == 0 {
		return vocab
	}

	var letters, syllables int
	for _, w := range all {
		letters += len(w)
		syllables += CountSyllables(w)
	}
	sentences := CountSentences(strings.Join(bodies, " "))

	vocab.WordCount = len(all)
	vocab.UniqueWords = len(occurrences)
	vocab.AvgWordLength = float64(letters) / float64(len(all))
	vocab.Readability = GradeLevel(len(all), sentences, syllables)

	df := map[string]int{}
	for _, set := range tokenSets {
		for w := range set {
			if len(w) < MIN_WORD_LENGTH || corpus.IsStopWord(w) {
				continue
			}
			df[w]++
		}
	}

	n := float64(len(comments))
	candidates := make([]candidate, 0, len(df))
	for w, d := range df {
		idf, ok := corpus.LookupIDF(w)
		if !ok || idf == 0 {
			idf = math.Log(n / float64(d))
		}
		candidates = append(candidates, candidate{text: w, df: d, score: float64(d) / n * idf})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].text < candidates[j].text
	})
	if len(candidates) > TOP_WORDS {
		candidates = candidates[:TOP_WORDS]
	}

	for _, cand := range candidates {
		vocab.TopWords = append(vocab.TopWords, wordStat(cand, comments, tokenSets, occurrences[cand.text]))
	}
	return vocab
}

func wordStat(cand candidate, comments []models.NormalizedComment, tokenSets []map[string]struct{}, occurrences int) models.WordStat {
	stat := models.WordStat{
		Text:              cand.text,
		Value:             occurrences,
		DocumentFrequency: cand.df,
		Score:             cand.score,
		Context:           []string{},
	}

	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(cand.text) + `\b`)
	var sum float64
	var count int
	for i, c := range comments {
		if _, ok := tokenSets[i][cand.text]; !ok {
			continue
		}
		sum += c.Sentiment.Comparative
		count++

		if len(stat.Context) < MAX_CONTEXTS {
			if loc := pattern.FindStringIndex(c.Body); loc != nil {
				stat.Context = append(stat.Context, snippet(c.Body, loc[0], loc[1]))
			}
		}
	}
	if count > 0 {
		stat.Sentiment = sum / float64(count)
	}
	return stat
}

// snippet returns the text between byte offsets start and end widened by
// CONTEXT_RADIUS runes on each side.
func snippet(body string, start, end int) string {
	runes := []rune(body)
	from := utf8.RuneCountInString(body[:start]) - CONTEXT_RADIUS
	to := utf8.RuneCountInString(body[:end]) + CONTEXT_RADIUS
	if from < 0 {
		from = 0
	}
	if to > len(runes) {
		to = len(runes)
	}
	return strings.TrimSpace(string(runes[from:to]))
}
