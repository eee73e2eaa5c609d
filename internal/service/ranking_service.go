package service

import (
	"context"
	"encoding/json"
	"fmt"
	"git_quiz_backend/internal/model"
	"git_quiz_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const rankingCacheKeyPrefix = "quiz:rankings:page:"

// SubmissionLister 按答题读取全部评分记录，最新在前
type SubmissionLister interface {
	ListByAttempt(attemptID string) ([]model.QuizSubmission, error)
}

// RankingStore 排行榜的持久化入口
type RankingStore interface {
	Upsert(entry *model.UserRanking) error
	CountDistinctScoresAbove(totalScore int) (int64, error)
	ListPage(offset, limit int) ([]model.UserRanking, error)
}

// RankingService 负责答题结算与排行榜读取。
// 排行榜页在 Redis 中短暂缓存并用 singleflight 防击穿，结算时失效。
type RankingService struct {
	submissions SubmissionLister
	rankings    RankingStore
	rdb         *redis.Client
	pageSize    int
	cacheTTL    time.Duration
	sf          singleflight.Group
}

func NewRankingService(submissions SubmissionLister, rankings RankingStore, rdb *redis.Client, pageSize int, cacheTTL time.Duration) *RankingService {
	return &RankingService{
		submissions: submissions,
		rankings:    rankings,
		rdb:         rdb,
		pageSize:    pageSize,
		cacheTTL:    cacheTTL,
	}
}

// CompleteResult 结算结果。排名读取失败时 Rank 为空，结算本身不受影响
type CompleteResult struct {
	TotalScore int  `json:"totalScore"`
	Rank       *int `json:"rank,omitempty"`
}

// Complete 结算一次答题：按每题最新一次提交求总分，以 attempt_id 为键
// 幂等地覆盖排行榜行，再按“严格更高的不同分值个数 + 1”计算竞赛排名。
// 页面刷新导致的重复调用会得到相同的总分，不会新增排行榜行。
func (s *RankingService) Complete(attemptID, userName string) (*CompleteResult, error) {
	submissions, err := s.submissions.ListByAttempt(attemptID)
	if err != nil {
		return nil, err
	}

	// 列表按最新在前排序，每题只取第一次出现的记录
	latestByQuestion := make(map[string]int)
	for _, sub := range submissions {
		if _, seen := latestByQuestion[sub.QuestionKey]; !seen {
			latestByQuestion[sub.QuestionKey] = sub.Score
		}
	}

	totalScore := 0
	for _, score := range latestByQuestion {
		totalScore += score
	}

	entry := &model.UserRanking{
		AttemptID:   attemptID,
		UserName:    userName,
		TotalScore:  totalScore,
		CompletedAt: time.Now(),
	}
	if err := s.rankings.Upsert(entry); err != nil {
		return nil, err
	}

	s.invalidateCache()

	result := &CompleteResult{TotalScore: totalScore}

	// 排名是尽力而为的即时读数，读失败只是少返回一个排名
	higher, err := s.rankings.CountDistinctScoresAbove(totalScore)
	if err != nil {
		logger.Log.Warn("rank computation failed, returning total score only",
			zap.String("attemptId", attemptID), zap.Error(err))
		return result, nil
	}
	rank := int(higher) + 1
	result.Rank = &rank

	return result, nil
}

// RankingPage 排行榜的一页。HasMore 按“本页取满”近似判断，
// 末页恰好取满时会多报一次 true，由前端多拉一次空页兜住
type RankingPage struct {
	Entries []model.UserRanking `json:"entries"`
	Page    int                 `json:"page"`
	HasMore bool                `json:"hasMore"`
}

// ListRankings 按总分降序、同分先完成者在前返回一页排行，页码从 1 开始
func (s *RankingService) ListRankings(page int) (*RankingPage, error) {
	if page < 1 {
		page = 1
	}

	if cached := s.loadCachedPage(page); cached != nil {
		return cached, nil
	}

	result, err, _ := s.sf.Do(fmt.Sprintf("rankings-page-%d", page), func() (interface{}, error) {
		// 等待期间可能已有并发请求填好缓存
		if cached := s.loadCachedPage(page); cached != nil {
			return cached, nil
		}

		offset := (page - 1) * s.pageSize
		entries, err := s.rankings.ListPage(offset, s.pageSize)
		if err != nil {
			return nil, err
		}

		rankingPage := &RankingPage{
			Entries: entries,
			Page:    page,
			HasMore: len(entries) == s.pageSize,
		}
		s.storeCachedPage(page, rankingPage)
		return rankingPage, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*RankingPage), nil
}

func (s *RankingService) loadCachedPage(page int) *RankingPage {
	if s.rdb == nil {
		return nil
	}
	val, err := s.rdb.Get(context.Background(), rankingCacheKey(page)).Result()
	if err != nil {
		return nil
	}
	var cached RankingPage
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *RankingService) storeCachedPage(page int, rankingPage *RankingPage) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(rankingPage)
	if err != nil {
		return
	}
	if err := s.rdb.Set(context.Background(), rankingCacheKey(page), data, s.cacheTTL).Err(); err != nil {
		logger.Log.Debug("ranking cache write failed", zap.Error(err))
	}
}

// invalidateCache 结算后清掉已缓存的排行榜页。
// 逐页扫描直到第一个不存在的键，页是连续写入的，不会留洞
func (s *RankingService) invalidateCache() {
	if s.rdb == nil {
		return
	}
	ctx := context.Background()
	for page := 1; ; page++ {
		deleted, err := s.rdb.Del(ctx, rankingCacheKey(page)).Result()
		if err != nil || deleted == 0 {
			return
		}
	}
}

func rankingCacheKey(page int) string {
	return fmt.Sprintf("%s%d", rankingCacheKeyPrefix, page)
}
