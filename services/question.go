package services

import (
	"log"
	"strconv"
)

// MathQuestion is one multiplication exercise.
type MathQuestion struct {
	Factor1 int `json:"factor1"`
	Factor2 int `json:"factor2"`
}

// QuestionGenerator produces practice questions and grades answers. The
// correct answer is always recomputed from the current question, never cached
// across question changes.
type QuestionGenerator struct {
	rng RandomSource

	Current           MathQuestion
	LastAnswerCorrect bool
	ConsecutiveWrong  int
}

func NewQuestionGenerator(rng RandomSource) *QuestionGenerator {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &QuestionGenerator{rng: rng, Current: MathQuestion{Factor1: 1, Factor2: 1}}
}

// GenerateNewQuestion picks factor1 uniformly from the given tables
// (duplicates in the input weight the pick) and factor2 in [1,10]. An empty
// table list falls back to table 1 with a logged warning.
func (g *QuestionGenerator) GenerateNewQuestion(tables []int) MathQuestion {
	if len(tables) == 0 {
		log.Println("⚠️  no tables provided for question generation, defaulting to table 1")
		tables = []int{1}
	}

	g.Current = MathQuestion{
		Factor1: tables[g.rng.IntN(len(tables))],
		Factor2: g.rng.IntN(10) + 1,
	}
	return g.Current
}

// CorrectAnswer derives the expected answer from the current question.
func (g *QuestionGenerator) CorrectAnswer() int {
	return g.Current.Factor1 * g.Current.Factor2
}

// SubmitAnswer grades a raw answer string. An empty string means "not
// submitted": it returns false without touching any state. Unparseable input
// counts as a wrong answer. The consecutive-wrong counter resets on correct
// and increments on incorrect.
func (g *QuestionGenerator) SubmitAnswer(raw string) bool {
	if raw == "" {
		return false
	}

	answer, err := strconv.Atoi(raw)
	isCorrect := err == nil && answer == g.CorrectAnswer()

	g.LastAnswerCorrect = isCorrect
	if isCorrect {
		g.ConsecutiveWrong = 0
	} else {
		g.ConsecutiveWrong++
	}
	return isCorrect
}

// Reset clears grading state between sessions.
func (g *QuestionGenerator) Reset() {
	g.ConsecutiveWrong = 0
	g.LastAnswerCorrect = false
}
