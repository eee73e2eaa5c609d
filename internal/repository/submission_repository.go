package repository

import (
	"git_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// Create 追加一条评分记录，已有记录永不更新
func (r *SubmissionRepository) Create(submission *model.QuizSubmission) error {
	return r.DB.Create(submission).Error
}

// ListByAttempt 按创建时间倒序返回一次答题的全部记录，
// 同一秒内的并列用自增 ID 兜底，保证“最新一条”稳定
func (r *SubmissionRepository) ListByAttempt(attemptID string) ([]model.QuizSubmission, error) {
	var submissions []model.QuizSubmission
	err := r.DB.Where("attempt_id = ?", attemptID).
		Order("created_at desc, id desc").
		Find(&submissions).Error
	return submissions, err
}
