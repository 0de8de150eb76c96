package question

import "math/rand"

// Outcome tells why Pick did or did not return a question.
type Outcome int

const (
	OutcomePicked Outcome = iota
	// OutcomeExhausted means every candidate has already been served.
	OutcomeExhausted
	// OutcomeEmptyPool means the category had no candidates at all.
	OutcomeEmptyPool
)

func (o Outcome) String() string {
	switch o {
	case OutcomePicked:
		return "picked"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeEmptyPool:
		return "empty_pool"
	default:
		return "unknown"
	}
}

// Selector draws an unseen quiz question uniformly at random.
type Selector struct {
	intn func(n int) int
}

// NewSelector uses intn as the random source; nil selects math/rand.Intn.
func NewSelector(intn func(n int) int) *Selector {
	if intn == nil {
		intn = rand.Intn
	}
	return &Selector{intn: intn}
}

// Pick filters pool down to the questions whose ids are not in served and draws one.
func (s *Selector) Pick(pool []Question, served []int) (Question, Outcome) {
	if len(pool) == 0 {
		return Question{}, OutcomeEmptyPool
	}

	seen := make(map[int]struct{}, len(served))
	for _, id := range served {
		seen[id] = struct{}{}
	}

	unseen := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			unseen = append(unseen, q)
		}
	}
	if len(unseen) == 0 {
		return Question{}, OutcomeExhausted
	}

	return unseen[s.intn(len(unseen))], OutcomePicked
}
