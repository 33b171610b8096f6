package trivia

import (
	"math/rand"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Outcome classifies the first guess of a round.
type Outcome int

const (
	// OutcomeNone means the message did not belong to an open round.
	OutcomeNone Outcome = iota
	// OutcomeCorrect means the guess matched the answer.
	OutcomeCorrect
	// OutcomeRevealed means the guess missed and the answer was given away.
	OutcomeRevealed
)

// Sessions tracks at most one open trivia round per channel. A round ends on
// the first guess regardless of whether it was right.
type Sessions struct {
	logger *zap.Logger

	mu     sync.Mutex
	rounds map[string]Question
}

func NewSessions(logger *zap.Logger) *Sessions {
	return &Sessions{
		logger: logger,
		rounds: make(map[string]Question),
	}
}

// Begin opens a round in the channel with a random question, replacing any
// round already open there.
func (s *Sessions) Begin(channelID string) Question {
	question := catalog[rand.Intn(len(catalog))]

	s.mu.Lock()
	s.rounds[channelID] = question
	s.mu.Unlock()

	s.logger.Debug("trivia round opened", zap.String("channel_id", channelID))
	return question
}

// Answer judges a guess against the channel's open round. Comparison ignores
// case and surrounding whitespace. Any guess, right or wrong, closes the
// round; the losing case returns the answer so the caller can reveal it.
func (s *Sessions) Answer(channelID, guess string) (Outcome, Question) {
	s.mu.Lock()
	defer s.mu.Unlock()

	question, ok := s.rounds[channelID]
	if !ok {
		return OutcomeNone, Question{}
	}
	delete(s.rounds, channelID)

	if strings.EqualFold(strings.TrimSpace(guess), question.Answer) {
		return OutcomeCorrect, question
	}
	return OutcomeRevealed, question
}

// Active reports whether the channel has an open round.
func (s *Sessions) Active(channelID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rounds[channelID]
	return ok
}
