package question

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Question is the formatted representation delivered to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is a read-only question category.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap renders categories as the {id: type} object the API returns.
func CategoryMap(categories []Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}

// FlexInt decodes from either a JSON number or a numeric JSON string; clients send
// both shapes for category ids and difficulties. Integral floats such as 2.0 are
// accepted, fractional ones are not.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*f = 0
			return nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*f = FlexInt(n)
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return fmt.Errorf("flexint: %q is not an integer", raw)
	}
	*f = FlexInt(int(v))
	return nil
}

// NewQuestion is a create submission. All four fields are required.
type NewQuestion struct {
	Question   string  `json:"question" validate:"required"`
	Answer     string  `json:"answer" validate:"required"`
	Category   FlexInt `json:"category" validate:"required,min=1"`
	Difficulty FlexInt `json:"difficulty" validate:"required,min=1"`
}

// QuizCategory identifies the candidate pool; ID 0 means every category.
type QuizCategory struct {
	ID   FlexInt `json:"id"`
	Type string  `json:"type,omitempty"`
}

// QuizRequest carries the client-held session state for one quiz round.
type QuizRequest struct {
	PreviousQuestions []FlexInt     `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Served returns the previously served ids as plain ints.
func (r QuizRequest) Served() []int {
	out := make([]int, len(r.PreviousQuestions))
	for i, id := range r.PreviousQuestions {
		out[i] = int(id)
	}
	return out
}

// QuestionPage is one page of a question listing or search.
type QuestionPage struct {
	Questions      []Question
	TotalQuestions int
	Categories     map[int]string
}

// CategoryPage is one page of the questions in a single category.
type CategoryPage struct {
	CurrentCategory   string
	Questions         []Question
	TotalQuestions    int
	CategoryQuestions int
}

// Created reports a successful insert.
type Created struct {
	ID             int
	Questions      []Question
	TotalQuestions int
}

// Deleted reports a successful delete.
type Deleted struct {
	ID             int
	TotalQuestions int
}
