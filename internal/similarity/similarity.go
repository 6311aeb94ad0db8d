// Package similarity scores textual closeness of a resume and a job
// description with TF-IDF weighted cosine similarity over the two-document
// corpus.
package similarity

import (
	"math"
)

// Vector is a sparse TF-IDF term vector for one document.
type Vector map[string]float64

// Vectorize builds TF-IDF vectors for the two documents. Terms are unigrams
// and bigrams over the token sequences. IDF is smoothed the same way
// scikit-learn smooths it, ln((1+N)/(1+df))+1, so terms shared by both
// documents keep non-zero weight and identical documents score a full match.
func Vectorize(resumeTokens, jobTokens []string) (resume, job Vector) {
	resumeTF := termFrequencies(resumeTokens)
	jobTF := termFrequencies(jobTokens)

	const corpusSize = 2.0
	idf := func(term string) float64 {
		df := 0.0
		if resumeTF[term] > 0 {
			df++
		}
		if jobTF[term] > 0 {
			df++
		}
		return math.Log((1+corpusSize)/(1+df)) + 1
	}

	resume = make(Vector, len(resumeTF))
	for term, tf := range resumeTF {
		resume[term] = tf * idf(term)
	}
	job = make(Vector, len(jobTF))
	for term, tf := range jobTF {
		job[term] = tf * idf(term)
	}
	return resume, job
}

// termFrequencies counts unigram and bigram occurrences.
func termFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens)*2)
	for i, tok := range tokens {
		tf[tok]++
		if i+1 < len(tokens) {
			tf[tok+" "+tokens[i+1]]++
		}
	}
	return tf
}

// Cosine computes the cosine of the angle between two vectors. Either vector
// being empty or zero-magnitude yields 0 rather than NaN; that is the defined
// value for degenerate input, not an error.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Iterate the smaller vector for the dot product.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	var dot float64
	for term, w := range small {
		if lw, ok := large[term]; ok {
			dot += w * lw
		}
	}
	if dot == 0 {
		return 0
	}

	normA := norm(a)
	normB := norm(b)
	if normA == 0 || normB == 0 {
		return 0
	}

	cos := dot / (normA * normB)
	// Guard against floating point drift just past 1.
	if cos > 1 {
		cos = 1
	}
	if cos < 0 {
		cos = 0
	}
	return cos
}

func norm(v Vector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Score computes the similarity percentage between two token sequences:
// cosine of their TF-IDF vectors scaled to [0,100], one decimal of precision.
// Identical sequences score exactly 100.0; an empty sequence scores 0.
func Score(resumeTokens, jobTokens []string) float64 {
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0
	}
	resumeVec, jobVec := Vectorize(resumeTokens, jobTokens)
	return Round1(Cosine(resumeVec, jobVec) * 100)
}

// Round1 rounds to one decimal place, the precision of all reported scores.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
