package model

import "time"

// StepFeedback 单题的评分结果快照
type StepFeedback struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// StepState 单个步骤内的作答进度
type StepState struct {
	Answers     map[string]string       `json:"answers"`
	Feedback    map[string]StepFeedback `json:"feedback"`
	IsSubmitted bool                    `json:"isSubmitted"`
	SubmitCount int                     `json:"submitCount"`
}

// AttemptState 一次答题的完整进度，作为显式的可序列化值在前后端间传递，
// 在明确的检查点保存/恢复，服务端以 attempt_id 为键暂存。
// swagger:model AttemptState
type AttemptState struct {
	AttemptID   string             `json:"attemptId"`
	UserName    string             `json:"userName"`
	CurrentStep int                `json:"currentStep"`
	StepData    map[int]*StepState `json:"stepData"`
	SavedAt     time.Time          `json:"savedAt"`
}
