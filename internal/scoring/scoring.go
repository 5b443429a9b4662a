package scoring

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"gradescan/internal/model"
)

// DefaultMaxScore is the number of questions on a simulated answer sheet.
const DefaultMaxScore = 50

// Labels derived from file name keywords.
const (
	LabelMidterm = "Math Mid-term"
	LabelQuiz    = "Science Quiz"
	LabelGeneral = "General Assessment"
)

// Simulator produces a score record for a validated document.
type Simulator interface {
	Score(ctx context.Context, doc *model.UploadedDocument) model.ScoreRecord
}

// RandomSimulator fabricates scores uniformly in [60% of max, max].
// It is safe for concurrent use.
type RandomSimulator struct {
	maxScore int
	minScore int

	mu  sync.Mutex
	rng *rand.Rand
}

var _ Simulator = (*RandomSimulator)(nil)

// NewRandomSimulator returns a simulator with the given maximum score.
// A nil src seeds a PCG generator from the clock; maxScore <= 0 falls back to DefaultMaxScore.
func NewRandomSimulator(maxScore int, src rand.Source) *RandomSimulator {
	if maxScore <= 0 {
		maxScore = DefaultMaxScore
	}
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}
	return &RandomSimulator{
		maxScore: maxScore,
		minScore: (maxScore*6 + 9) / 10,
		rng:      rand.New(src),
	}
}

// MaxScore returns the constant maximum used for every record.
func (s *RandomSimulator) MaxScore() int {
	return s.maxScore
}

// Score labels the sheet from its client file name and draws a score.
// The label uses the full name; SafeName is length capped for the disk and may have lost the keyword.
// It does not read the file; validation already established it is a readable document.
func (s *RandomSimulator) Score(_ context.Context, doc *model.UploadedDocument) model.ScoreRecord {
	name := ""
	if doc != nil {
		name = doc.OriginalName
		if name == "" {
			name = doc.SafeName
		}
	}

	s.mu.Lock()
	suffix := 100 + s.rng.IntN(900)
	score := s.minScore + s.rng.IntN(s.maxScore-s.minScore+1)
	s.mu.Unlock()

	return model.ScoreRecord{
		TestName: fmt.Sprintf("%s (%d)", Label(name), suffix),
		Score:    score,
		MaxScore: s.maxScore,
	}
}

// Label maps a file name to a test label; "midterm" takes precedence over "quiz".
func Label(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "midterm"):
		return LabelMidterm
	case strings.Contains(lower, "quiz"):
		return LabelQuiz
	default:
		return LabelGeneral
	}
}
