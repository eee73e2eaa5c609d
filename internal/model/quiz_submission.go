package model

// QuizSubmission 一次评分事件的不可变记录。重复作答会追加新记录而不是覆盖，
// 计分时只取同一 (attempt_id, question_key) 下最新的一条，旧记录保留用于审计。
// swagger:model QuizSubmission
type QuizSubmission struct {
	BaseModel
	AttemptID   string `gorm:"size:36;index:idx_attempt_question;not null" json:"attemptId"`
	UserName    string `gorm:"size:100;not null" json:"userName"`
	StepID      uint   `gorm:"index;type:bigint unsigned" json:"stepId"`
	QuestionKey string `gorm:"size:64;index:idx_attempt_question;not null" json:"questionKey"`
	Question    string `gorm:"type:text" json:"question"`
	Answer      string `gorm:"type:text" json:"answer"`
	Score       int    `gorm:"default:0" json:"score"`
	Feedback    string `gorm:"type:text" json:"feedback"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}
