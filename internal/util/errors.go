package util

import "errors"

var (
	ErrStepNotFound     = errors.New("课程步骤不存在")
	ErrQuestionNotFound = errors.New("题目不存在")
	ErrAttemptNotFound  = errors.New("答题进度不存在或已过期")
	ErrMissingRequired  = errors.New("用户名、答题 ID、答案为必填项")
)
