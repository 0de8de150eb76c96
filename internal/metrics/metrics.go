package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trivia"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	quizDraws = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_draws_total",
		Help:      "Quiz question draws by outcome (picked, exhausted, empty_pool).",
	}, []string{"outcome"})

	questionMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "question_mutations_total",
		Help:      "Question creates and deletes.",
	}, []string{"op"})

	categoryCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_cache_lookups_total",
		Help:      "Category cache lookups by result (hit, miss, error).",
	}, []string{"result"})
)

// ObserveHTTP records one finished request.
func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// QuizDraw counts a quiz selection by its outcome label.
func QuizDraw(outcome string) {
	quizDraws.WithLabelValues(outcome).Inc()
}

// QuestionCreated counts a successful insert.
func QuestionCreated() {
	questionMutations.WithLabelValues("create").Inc()
}

// QuestionDeleted counts a successful delete.
func QuestionDeleted() {
	questionMutations.WithLabelValues("delete").Inc()
}

// CategoryCacheLookup counts a cache lookup by result.
func CategoryCacheLookup(result string) {
	categoryCacheLookups.WithLabelValues(result).Inc()
}
