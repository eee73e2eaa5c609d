package service

import (
	"git_quiz_backend/internal/model"
	"git_quiz_backend/internal/repository"
	"git_quiz_backend/internal/util"
)

// QuizService 课程内容下发与答题进度管理
type QuizService struct {
	steps  *repository.StepRepository
	states *repository.AttemptStateStore
}

func NewQuizService(steps *repository.StepRepository, states *repository.AttemptStateStore) *QuizService {
	return &QuizService{steps: steps, states: states}
}

// QuizOverview 课程概览，满分用于前端展示进度
type QuizOverview struct {
	Steps          []model.QuizStep `json:"steps"`
	TotalQuestions int64            `json:"totalQuestions"`
	MaxTotalScore  int64            `json:"maxTotalScore"`
}

// GetOverview 返回全部课程步骤。题目的参考答案不参与序列化，不会下发给学员
func (s *QuizService) GetOverview() (*QuizOverview, error) {
	steps, err := s.steps.ListSteps()
	if err != nil {
		return nil, err
	}
	totalQuestions, err := s.steps.CountQuestions()
	if err != nil {
		return nil, err
	}
	maxTotal, err := s.steps.SumMaxScore()
	if err != nil {
		return nil, err
	}
	return &QuizOverview{
		Steps:          steps,
		TotalQuestions: totalQuestions,
		MaxTotalScore:  maxTotal,
	}, nil
}

func (s *QuizService) GetStep(stepOrder int) (*model.QuizStep, error) {
	return s.steps.FindStepByOrder(stepOrder)
}

// StartAttempt 开始一次新的答题：发放不透明的 attempt_id 并写入初始进度
func (s *QuizService) StartAttempt(userName string) (*model.AttemptState, error) {
	state := &model.AttemptState{
		AttemptID:   model.GenerateAttemptID(),
		UserName:    userName,
		CurrentStep: 0,
		StepData:    make(map[int]*model.StepState),
	}
	if err := s.states.Save(state); err != nil {
		return nil, err
	}
	return state, nil
}

// SaveState 在检查点整体覆盖答题进度
func (s *QuizService) SaveState(state *model.AttemptState) error {
	if state.AttemptID == "" || state.UserName == "" {
		return util.ErrMissingRequired
	}
	if state.StepData == nil {
		state.StepData = make(map[int]*model.StepState)
	}
	return s.states.Save(state)
}

func (s *QuizService) LoadState(attemptID string) (*model.AttemptState, error) {
	return s.states.Load(attemptID)
}
