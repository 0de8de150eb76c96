package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestQuizDrawCounts(t *testing.T) {
	before := testutil.ToFloat64(quizDraws.WithLabelValues("exhausted"))
	QuizDraw("exhausted")
	assert.Equal(t, before+1, testutil.ToFloat64(quizDraws.WithLabelValues("exhausted")))
}

func TestObserveHTTPUnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", "GET", "404"))
	ObserveHTTP("", "GET", 404, 5*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", "GET", "404")))
}

func TestQuestionMutations(t *testing.T) {
	created := testutil.ToFloat64(questionMutations.WithLabelValues("create"))
	deleted := testutil.ToFloat64(questionMutations.WithLabelValues("delete"))

	QuestionCreated()
	QuestionDeleted()
	QuestionDeleted()

	assert.Equal(t, created+1, testutil.ToFloat64(questionMutations.WithLabelValues("create")))
	assert.Equal(t, deleted+2, testutil.ToFloat64(questionMutations.WithLabelValues("delete")))
}
