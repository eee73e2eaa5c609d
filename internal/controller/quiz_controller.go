package controller

import (
	"errors"
	"git_quiz_backend/internal/model"
	"git_quiz_backend/internal/service"
	"git_quiz_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// @Summary 获取课程步骤列表
// @Description 返回全部 Git 闯关步骤和题目（不含参考答案）
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/steps [get]
func (c *QuizController) ListSteps(ctx *gin.Context) {
	overview, err := c.Service.GetOverview()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// @Summary 获取单个课程步骤
// @Tags 课程
// @Produce json
// @Param order path int true "步骤序号"
// @Success 200 {object} util.Response
// @Router /api/steps/{order} [get]
func (c *QuizController) GetStep(ctx *gin.Context) {
	order, err := strconv.Atoi(ctx.Param("order"))
	if err != nil {
		util.BadRequest(ctx, "invalid step order")
		return
	}

	step, err := c.Service.GetStep(order)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, step)
}

type StartAttemptRequest struct {
	UserName string `json:"userName" binding:"required"`
}

// @Summary 开始一次新的答题
// @Description 发放 attemptId 并初始化答题进度
// @Tags 答题
// @Accept json
// @Produce json
// @Param body body StartAttemptRequest true "用户名"
// @Success 201 {object} util.Response
// @Router /api/attempts [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	var req StartAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "用户名为必填项")
		return
	}

	state, err := c.Service.StartAttempt(req.UserName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, state)
}

// @Summary 读取答题进度
// @Tags 答题
// @Produce json
// @Param id path string true "答题ID"
// @Success 200 {object} util.Response
// @Router /api/attempts/{id}/state [get]
func (c *QuizController) GetAttemptState(ctx *gin.Context) {
	state, err := c.Service.LoadState(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) {
			util.Error(ctx, 404, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// @Summary 保存答题进度
// @Description 在检查点整体覆盖答题进度快照
// @Tags 答题
// @Accept json
// @Produce json
// @Param id path string true "答题ID"
// @Param body body model.AttemptState true "进度快照"
// @Success 200 {object} util.Response
// @Router /api/attempts/{id}/state [put]
func (c *QuizController) SaveAttemptState(ctx *gin.Context) {
	var state model.AttemptState
	if err := ctx.ShouldBindJSON(&state); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	state.AttemptID = ctx.Param("id")

	if err := c.Service.SaveState(&state); err != nil {
		if errors.Is(err, util.ErrMissingRequired) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, state)
}
