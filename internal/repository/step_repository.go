package repository

import (
	"git_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type StepRepository struct {
	DB *gorm.DB
}

func NewStepRepository(db *gorm.DB) *StepRepository {
	return &StepRepository{DB: db}
}

func (r *StepRepository) ListSteps() ([]model.QuizStep, error) {
	var steps []model.QuizStep
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.sort_order asc")
	}).Order("step_order asc").Find(&steps).Error
	return steps, err
}

func (r *StepRepository) FindStepByOrder(stepOrder int) (*model.QuizStep, error) {
	var step model.QuizStep
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.sort_order asc")
	}).Where("step_order = ?", stepOrder).First(&step).Error
	if err != nil {
		return nil, err
	}
	return &step, nil
}

func (r *StepRepository) FindQuestionByKey(questionKey string) (*model.QuizQuestion, error) {
	var q model.QuizQuestion
	err := r.DB.Where("question_key = ?", questionKey).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CountQuestions 全部题目数
func (r *StepRepository) CountQuestions() (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizQuestion{}).Count(&count).Error
	return count, err
}

// SumMaxScore 全部题目满分之和
func (r *StepRepository) SumMaxScore() (int64, error) {
	var total int64
	err := r.DB.Model(&model.QuizQuestion{}).
		Select("COALESCE(SUM(max_score), 0)").Scan(&total).Error
	return total, err
}
