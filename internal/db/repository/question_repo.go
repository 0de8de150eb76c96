package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepository wraps gorm access to the questions table.
type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// List returns all questions ordered by id so pages stay stable between calls.
func (r *QuestionRepository) List(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByCategory returns the questions filed under categoryID.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	var questions []Question
	if err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Search matches term case-insensitively anywhere in the question text.
// LIKE wildcards in term are matched literally.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]Question, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	var questions []Question
	if err := r.db.WithContext(ctx).
		Where("question ILIKE ?", pattern).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Get returns the question with id, or nil when it does not exist.
func (r *QuestionRepository) Get(ctx context.Context, id int) (*Question, error) {
	var question Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// Create inserts q and fills in its generated id.
func (r *QuestionRepository) Create(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// Delete removes the question with id and reports how many rows went away.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Question{}, "id = ?", id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Count returns the number of stored questions.
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
