package controller

import (
	"git_quiz_backend/internal/service"
	"git_quiz_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	Service *service.RankingService
}

func NewRankingController(svc *service.RankingService) *RankingController {
	return &RankingController{Service: svc}
}

type CompleteRequest struct {
	AttemptID string `json:"attemptId" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
}

// @Summary 结算一次答题
// @Description 按每题最新提交计算总分并写入排行榜，同一答题重复结算只覆盖不新增。
// @Description 排名读取失败时只返回总分。
// @Tags 排行榜
// @Accept json
// @Produce json
// @Param body body CompleteRequest true "结算参数"
// @Success 200 {object} util.Response
// @Router /api/complete [post]
func (c *RankingController) Complete(ctx *gin.Context) {
	var req CompleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "用户名和答题 ID 为必填项")
		return
	}

	result, err := c.Service.Complete(req.AttemptID, req.UserName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 查询排行榜
// @Description 按总分降序、同分先完成者在前分页返回，页码从 1 开始
// @Tags 排行榜
// @Produce json
// @Param page query int false "页码"
// @Success 200 {object} util.Response
// @Router /api/rankings [get]
func (c *RankingController) ListRankings(ctx *gin.Context) {
	page := 1
	if pageStr := ctx.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	rankingPage, err := c.Service.ListRankings(page)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rankingPage)
}
