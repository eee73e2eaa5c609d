package model

import "time"

// UserRanking 每次答题（attempt）在排行榜上的唯一一行。
// 同一 attempt 重复结算时就地覆盖总分和完成时间，不产生新行。
// swagger:model UserRanking
type UserRanking struct {
	BaseModel
	AttemptID   string    `gorm:"size:36;uniqueIndex;not null" json:"attemptId"`
	UserName    string    `gorm:"size:100;not null" json:"userName"`
	TotalScore  int       `gorm:"index;default:0" json:"totalScore"`
	CompletedAt time.Time `json:"completedAt"`
}

func (UserRanking) TableName() string {
	return "user_rankings"
}
