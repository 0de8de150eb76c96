package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	"github.com/gokatarajesh/trivia-api/pkg/validator"
)

var (
	// ErrNotFound covers missing records and empty pages.
	ErrNotFound = errors.New("not found")
	// ErrIncomplete means a new question is missing a required field.
	ErrIncomplete = errors.New("question submission incomplete")
	// ErrUnknownCategory means a new question references a category that does not exist.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrCreateFailed wraps storage failures during insert.
	ErrCreateFailed = errors.New("create question failed")
	// ErrMissingCategory means a quiz request carried no quiz_category.
	ErrMissingCategory = errors.New("quiz_category is required")
)

type questionStore interface {
	List(ctx context.Context) ([]repository.Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]repository.Question, error)
	Search(ctx context.Context, term string) ([]repository.Question, error)
	Get(ctx context.Context, id int) (*repository.Question, error)
	Create(ctx context.Context, q *repository.Question) error
	Delete(ctx context.Context, id int) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type categoryStore interface {
	List(ctx context.Context) ([]repository.Category, error)
	Get(ctx context.Context, id int) (*repository.Category, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// Service implements the trivia operations on top of the repositories.
type Service struct {
	questions  questionStore
	categories categoryStore
	cache      CategoryCache
	selector   *Selector
	pageSize   int
	logger     zerolog.Logger
}

type ServiceOptions struct {
	PageSize int
	Cache    CategoryCache
	Selector *Selector
}

func NewService(questions questionStore, categories categoryStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	cache := opts.Cache
	if cache == nil {
		cache = NopCategoryCache{}
	}
	selector := opts.Selector
	if selector == nil {
		selector = NewSelector(nil)
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
		selector:   selector,
		pageSize:   pageSize,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// Categories returns every category, served from the cache when possible.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	cached, err := s.cache.Get(ctx)
	switch {
	case err != nil:
		metrics.CategoryCacheLookup("error")
		s.logger.Warn().Err(err).Msg("category cache read failed")
	case len(cached) > 0:
		metrics.CategoryCacheLookup("hit")
		return cached, nil
	default:
		metrics.CategoryCacheLookup("miss")
	}
	return s.RefreshCategories(ctx)
}

// RefreshCategories reloads categories from the database and rewrites the cache.
func (s *Service) RefreshCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryToDomain(row)
	}
	if len(categories) > 0 {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// ListQuestions returns one page of every question plus the category map.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	rows, err := s.questions.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}

	paged := Paginate(toDomain(rows), page, s.pageSize)
	if len(paged) == 0 || len(categories) == 0 {
		return QuestionPage{}, ErrNotFound
	}
	return QuestionPage{
		Questions:      paged,
		TotalQuestions: len(rows),
		Categories:     CategoryMap(categories),
	}, nil
}

// QuestionsByCategory returns one page of the questions filed under categoryID.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (CategoryPage, error) {
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return CategoryPage{}, fmt.Errorf("get category %d: %w", categoryID, err)
	}
	if category == nil {
		return CategoryPage{}, ErrNotFound
	}

	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryPage{}, fmt.Errorf("list category %d questions: %w", categoryID, err)
	}
	paged := Paginate(toDomain(rows), page, s.pageSize)
	if len(paged) == 0 {
		return CategoryPage{}, ErrNotFound
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return CategoryPage{}, fmt.Errorf("count questions: %w", err)
	}
	return CategoryPage{
		CurrentCategory:   category.Type,
		Questions:         paged,
		TotalQuestions:    int(total),
		CategoryQuestions: len(rows),
	}, nil
}

// Search returns one page of the questions whose text contains term.
func (s *Service) Search(ctx context.Context, term string, page int) (QuestionPage, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("search questions: %w", err)
	}
	paged := Paginate(toDomain(rows), page, s.pageSize)
	if len(paged) == 0 {
		return QuestionPage{}, ErrNotFound
	}
	return QuestionPage{
		Questions:      paged,
		TotalQuestions: len(rows),
	}, nil
}

// Create validates and stores a new question, then returns the requested page of
// the full listing.
func (s *Service) Create(ctx context.Context, in NewQuestion, page int) (Created, error) {
	if err := validator.ValidateStruct(in); err != nil {
		return Created{}, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}

	exists, err := s.categories.Exists(ctx, int(in.Category))
	if err != nil {
		return Created{}, fmt.Errorf("%w: check category: %v", ErrCreateFailed, err)
	}
	if !exists {
		return Created{}, fmt.Errorf("%w: %d", ErrUnknownCategory, in.Category)
	}

	row := repository.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   int(in.Category),
		Difficulty: int(in.Difficulty),
	}
	if err := s.questions.Create(ctx, &row); err != nil {
		return Created{}, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}
	metrics.QuestionCreated()
	s.logger.Info().Int("question_id", row.ID).Int("category", row.Category).Msg("question created")

	all, err := s.questions.List(ctx)
	if err != nil {
		return Created{}, fmt.Errorf("list questions: %w", err)
	}
	return Created{
		ID:             row.ID,
		Questions:      Paginate(toDomain(all), page, s.pageSize),
		TotalQuestions: len(all),
	}, nil
}

// Delete removes the question with id. A missing id is ErrNotFound and mutates nothing.
func (s *Service) Delete(ctx context.Context, id int) (Deleted, error) {
	existing, err := s.questions.Get(ctx, id)
	if err != nil {
		return Deleted{}, fmt.Errorf("get question %d: %w", id, err)
	}
	if existing == nil {
		return Deleted{}, ErrNotFound
	}

	removed, err := s.questions.Delete(ctx, id)
	if err != nil {
		return Deleted{}, fmt.Errorf("delete question %d: %w", id, err)
	}
	if removed == 0 {
		// deleted by a concurrent request between Get and Delete
		return Deleted{}, ErrNotFound
	}
	metrics.QuestionDeleted()
	s.logger.Info().Int("question_id", id).Msg("question deleted")

	total, err := s.questions.Count(ctx)
	if err != nil {
		return Deleted{}, fmt.Errorf("count questions: %w", err)
	}
	return Deleted{ID: id, TotalQuestions: int(total)}, nil
}

// NextQuizQuestion picks an unseen question from the requested pool. A nil question
// with a nil error means the round is over, either because every candidate was
// served or because the category has no questions.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (*Question, error) {
	if req.QuizCategory == nil {
		return nil, ErrMissingCategory
	}

	categoryID := int(req.QuizCategory.ID)
	var (
		rows []repository.Question
		err  error
	)
	if categoryID == 0 {
		rows, err = s.questions.List(ctx)
	} else {
		rows, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz pool: %w", err)
	}

	picked, outcome := s.selector.Pick(toDomain(rows), req.Served())
	metrics.QuizDraw(outcome.String())
	if outcome != OutcomePicked {
		s.logger.Debug().
			Int("category", categoryID).
			Int("pool", len(rows)).
			Int("served", len(req.PreviousQuestions)).
			Str("outcome", outcome.String()).
			Msg("no quiz question left")
		return nil, nil
	}
	return &picked, nil
}

func toDomain(rows []repository.Question) []Question {
	out := make([]Question, len(rows))
	for i, row := range rows {
		out[i] = Question{
			ID:         row.ID,
			Question:   row.Question,
			Answer:     row.Answer,
			Category:   row.Category,
			Difficulty: row.Difficulty,
		}
	}
	return out
}

func categoryToDomain(row repository.Category) Category {
	return Category{ID: row.ID, Type: row.Type}
}
