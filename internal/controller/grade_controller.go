package controller

import (
	"errors"
	"git_quiz_backend/internal/service"
	"git_quiz_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GradeController struct {
	Service *service.GradingService
}

func NewGradeController(svc *service.GradingService) *GradeController {
	return &GradeController{Service: svc}
}

// @Summary 提交答案并评分
// @Description 按题目标识在服务端解析题干和参考答案，调用评分模型打分并落库。
// @Description 评分自身不会失败（失败退化为 0 分兜底），500 仅表示评分记录未能保存，应重试提交。
// @Tags 评分
// @Accept json
// @Produce json
// @Param body body service.GradeSubmissionRequest true "答案内容"
// @Success 200 {object} util.Response
// @Router /api/grade [post]
func (c *GradeController) Grade(ctx *gin.Context) {
	var req service.GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "用户名、答题 ID、题目标识、答案为必填项")
		return
	}

	submission, err := c.Service.GradeAndRecord(req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(ctx, http.StatusNotFound, util.ErrQuestionNotFound.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"score":      submission.Score,
		"feedback":   submission.Feedback,
		"submission": submission,
	})
}
