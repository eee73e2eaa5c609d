package model

// 题型
const (
	QuestionKindShort = "short"
	QuestionKindLong  = "long"
)

// QuizStep 一个课程步骤，可以只有讲解内容而没有题目
// swagger:model QuizStep
type QuizStep struct {
	BaseModel
	StepOrder int            `gorm:"uniqueIndex;not null" json:"stepOrder"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Content   string         `gorm:"type:text" json:"content"`
	Questions []QuizQuestion `gorm:"foreignKey:StepID;references:ID" json:"questions"`
}

func (QuizStep) TableName() string {
	return "quiz_steps"
}

// QuizQuestion 步骤内的一道题，参考答案仅用于评分，不下发给学员
// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	StepID          uint   `gorm:"index;type:bigint unsigned" json:"stepId"`
	QuestionKey     string `gorm:"size:64;uniqueIndex;not null" json:"questionKey"` // 如 step1-q1
	Content         string `gorm:"type:text;not null" json:"content"`
	Kind            string `gorm:"size:20;default:'long'" json:"kind"` // short, long
	ReferenceAnswer string `gorm:"type:text" json:"-"`
	MaxScore        int    `gorm:"default:5" json:"maxScore"`
	Order           int    `gorm:"column:sort_order;default:0" json:"order"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
