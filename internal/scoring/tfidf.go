package scoring

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxFeatures caps the vocabulary built over the compared texts.
const DefaultMaxFeatures = 500

// TFIDF is a cosine similarity over TF-IDF vectors of unigrams and bigrams.
// The vocabulary is fitted on the two compared texts only.
type TFIDF struct {
	maxFeatures int
}

func NewTFIDF() *TFIDF {
	return &TFIDF{maxFeatures: DefaultMaxFeatures}
}

// NewTFIDFWithFeatures returns a TFIDF with a custom vocabulary cap. A
// non-positive cap means no limit.
func NewTFIDFWithFeatures(maxFeatures int) *TFIDF {
	return &TFIDF{maxFeatures: maxFeatures}
}

// Similarity returns the cosine similarity of a and b scaled to 0..100. An
// empty vocabulary or an empty vector gives 0.
func (t *TFIDF) Similarity(a, b string) float64 {
	docs := []map[string]int{countTerms(a), countTerms(b)}

	vocab := t.vocabulary(docs)
	if len(vocab) == 0 {
		return 0
	}

	idf := make([]float64, len(vocab))
	n := float64(len(docs))
	for i, term := range vocab {
		df := 0
		for _, d := range docs {
			if d[term] > 0 {
				df++
			}
		}
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}

	va := weigh(docs[0], vocab, idf)
	vb := weigh(docs[1], vocab, idf)

	var dot, na, nb float64
	for i := range vocab {
		dot += va[i] * vb[i]
		na += va[i] * va[i]
		nb += vb[i] * vb[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(na) * math.Sqrt(nb)) * 100
	return math.Max(0, math.Min(100, sim))
}

// vocabulary keeps the most frequent terms across docs, ties in
// alphabetical order.
func (t *TFIDF) vocabulary(docs []map[string]int) []string {
	total := map[string]int{}
	for _, d := range docs {
		for term, c := range d {
			total[term] += c
		}
	}

	vocab := make([]string, 0, len(total))
	for term := range total {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if total[vocab[i]] != total[vocab[j]] {
			return total[vocab[i]] > total[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})

	if t.maxFeatures > 0 && len(vocab) > t.maxFeatures {
		vocab = vocab[:t.maxFeatures]
	}
	return vocab
}

func weigh(counts map[string]int, vocab []string, idf []float64) []float64 {
	v := make([]float64, len(vocab))
	for i, term := range vocab {
		v[i] = float64(counts[term]) * idf[i]
	}
	return v
}

// countTerms counts lowercased unigrams of two or more word characters and
// the bigrams formed by adjacent unigrams.
func countTerms(text string) map[string]int {
	tokens := tokenize(strings.ToLower(text))

	counts := make(map[string]int, len(tokens)*2)
	for i, tok := range tokens {
		counts[tok]++
		if i > 0 {
			counts[tokens[i-1]+" "+tok]++
		}
	}
	return counts
}

func tokenize(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) >= 2 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
