package repository

import (
	"git_quiz_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RankingRepository struct {
	DB *gorm.DB
}

func NewRankingRepository(db *gorm.DB) *RankingRepository {
	return &RankingRepository{DB: db}
}

// Upsert 以 attempt_id 为唯一键写入排行榜，已存在时就地覆盖。
// 冲突解决交给数据库的唯一键，同一 attempt 的并发结算以后写为准。
func (r *RankingRepository) Upsert(entry *model.UserRanking) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attempt_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_name", "total_score", "completed_at", "updated_at"}),
	}).Create(entry).Error
}

// CountDistinctScoresAbove 严格高于给定总分的不同分值个数（竞赛排名用）
func (r *RankingRepository) CountDistinctScoresAbove(totalScore int) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserRanking{}).
		Where("total_score > ?", totalScore).
		Distinct("total_score").
		Count(&count).Error
	return count, err
}

// ListPage 按总分降序、同分先完成者在前返回一页排行
func (r *RankingRepository) ListPage(offset, limit int) ([]model.UserRanking, error) {
	var entries []model.UserRanking
	err := r.DB.Order("total_score desc, completed_at asc").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	return entries, err
}
