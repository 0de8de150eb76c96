package question

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) List(ctx context.Context) ([]repository.Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.Question), args.Error(1)
}

func (m *mockQuestionStore) ListByCategory(ctx context.Context, categoryID int) ([]repository.Question, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]repository.Question), args.Error(1)
}

func (m *mockQuestionStore) Search(ctx context.Context, term string) ([]repository.Question, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]repository.Question), args.Error(1)
}

func (m *mockQuestionStore) Get(ctx context.Context, id int) (*repository.Question, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*repository.Question)
	return q, args.Error(1)
}

func (m *mockQuestionStore) Create(ctx context.Context, q *repository.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *mockQuestionStore) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuestionStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) List(ctx context.Context) ([]repository.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.Category), args.Error(1)
}

func (m *mockCategoryStore) Get(ctx context.Context, id int) (*repository.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*repository.Category)
	return c, args.Error(1)
}

func (m *mockCategoryStore) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type memoryCache struct {
	stored []Category
	sets   int
}

func (c *memoryCache) Get(context.Context) ([]Category, error) {
	return c.stored, nil
}

func (c *memoryCache) Set(_ context.Context, categories []Category) error {
	c.stored = categories
	c.sets++
	return nil
}

func questionRows(category int, ids ...int) []repository.Question {
	rows := make([]repository.Question, len(ids))
	for i, id := range ids {
		rows[i] = repository.Question{ID: id, Question: "Question", Answer: "Answer", Category: category, Difficulty: 2}
	}
	return rows
}

func idRange(from, to int) []int {
	var ids []int
	for i := from; i <= to; i++ {
		ids = append(ids, i)
	}
	return ids
}

var seededCategories = []repository.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}
