package service

import (
	"git_quiz_backend/internal/model"
	"git_quiz_backend/pkg/logger"
	"git_quiz_backend/pkg/monitoring"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

// 评分相关的固定话术
const (
	FeedbackGradingFailed = "评分失败，请稍后重试。"
	FeedbackIrrelevant    = "回答与题目的关联度不足，请围绕题目内容重新作答。"
	FeedbackUnavailable   = "本次未能生成评语。"
)

// GradingOracle 外部评分模型，*AIService 是生产实现
type GradingOracle interface {
	GradeAnswer(question, referenceAnswer, answer string, maxScore int) (GradeVerdict, error)
}

// QuestionFinder 题目查询，由课程仓库实现
type QuestionFinder interface {
	FindQuestionByKey(questionKey string) (*model.QuizQuestion, error)
}

// SubmissionAppender 评分记录的追加写入口
type SubmissionAppender interface {
	Create(submission *model.QuizSubmission) error
}

type GradingService struct {
	oracle      GradingOracle
	questions   QuestionFinder
	submissions SubmissionAppender
}

func NewGradingService(oracle GradingOracle, questions QuestionFinder, submissions SubmissionAppender) *GradingService {
	return &GradingService{
		oracle:      oracle,
		questions:   questions,
		submissions: submissions,
	}
}

// GradeResult 对外暴露的最终评分，分数保证落在 [0, maxScore] 的整数区间
type GradeResult struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Grade 对一道题的回答给出最终评分，任何失败路径都退化为安全的兜底结果，不向上抛错。
// 相关性由外部模型和本地启发式共同裁定，任一方否决即记 0 分并丢弃模型给的分数。
func (s *GradingService) Grade(question, referenceAnswer, answer string, maxScore int) GradeResult {
	start := time.Now()
	verdict, err := s.oracle.GradeAnswer(question, referenceAnswer, answer, maxScore)
	monitoring.OracleDuration.Observe(time.Since(start).Seconds())

	if err != nil || verdict.Malformed {
		if err != nil {
			logger.Log.Warn("grading oracle call failed", zap.Error(err))
		} else {
			logger.Log.Warn("grading oracle returned malformed verdict")
		}
		monitoring.GradingCounter.WithLabelValues("oracle_failed").Inc()
		return GradeResult{Score: 0, Feedback: FeedbackGradingFailed}
	}

	guardRelevant := IsPlausiblyRelevant(question, referenceAnswer, answer)
	if !verdict.IsRelevant || !guardRelevant {
		monitoring.GradingCounter.WithLabelValues("irrelevant").Inc()
		return GradeResult{Score: 0, Feedback: FeedbackIrrelevant}
	}

	feedback := strings.TrimSpace(verdict.Feedback)
	if feedback == "" {
		feedback = FeedbackUnavailable
	}

	monitoring.GradingCounter.WithLabelValues("ok").Inc()
	return GradeResult{
		Score:    clampScore(verdict.Score, maxScore),
		Feedback: feedback,
	}
}

// clampScore 把模型给的数值收敛为 [0, maxScore] 的整数，非正常数值按 0 处理
func clampScore(score float64, maxScore int) int {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
	}
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > maxScore {
		return maxScore
	}
	return rounded
}

type GradeSubmissionRequest struct {
	AttemptID   string `json:"attemptId" binding:"required"`
	UserName    string `json:"userName" binding:"required"`
	QuestionKey string `json:"questionKey" binding:"required"`
	Answer      string `json:"answer" binding:"required"`
}

// GradeAndRecord 按题目标识在服务端解析题干、参考答案和满分后评分，
// 并把结果作为一条新的不可变记录落库。落库失败时评分结果已经产生，
// 错误只表示持久化失败，调用方提示用户重试记录而不是重新评分。
func (s *GradingService) GradeAndRecord(req GradeSubmissionRequest) (*model.QuizSubmission, error) {
	question, err := s.questions.FindQuestionByKey(req.QuestionKey)
	if err != nil {
		return nil, err
	}

	result := s.Grade(question.Content, question.ReferenceAnswer, req.Answer, question.MaxScore)

	submission := &model.QuizSubmission{
		AttemptID:   req.AttemptID,
		UserName:    req.UserName,
		StepID:      question.StepID,
		QuestionKey: question.QuestionKey,
		Question:    question.Content,
		Answer:      req.Answer,
		Score:       result.Score,
		Feedback:    result.Feedback,
	}
	if err := s.submissions.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}
