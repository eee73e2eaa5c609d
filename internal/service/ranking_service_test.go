package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"git_quiz_backend/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

type fakeSubmissionLister struct {
	byAttempt map[string][]model.QuizSubmission
	err       error
}

func (f *fakeSubmissionLister) ListByAttempt(attemptID string) ([]model.QuizSubmission, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byAttempt[attemptID], nil
}

type fakeRankingStore struct {
	entries  map[string]*model.UserRanking
	order    []string
	countErr error
	listErr  error
	listHits int
}

func newFakeRankingStore() *fakeRankingStore {
	return &fakeRankingStore{entries: make(map[string]*model.UserRanking)}
}

func (f *fakeRankingStore) Upsert(entry *model.UserRanking) error {
	if _, exists := f.entries[entry.AttemptID]; !exists {
		f.order = append(f.order, entry.AttemptID)
	}
	f.entries[entry.AttemptID] = entry
	return nil
}

func (f *fakeRankingStore) CountDistinctScoresAbove(totalScore int) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	distinct := make(map[int]struct{})
	for _, entry := range f.entries {
		if entry.TotalScore > totalScore {
			distinct[entry.TotalScore] = struct{}{}
		}
	}
	return int64(len(distinct)), nil
}

func (f *fakeRankingStore) ListPage(offset, limit int) ([]model.UserRanking, error) {
	f.listHits++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var all []model.UserRanking
	for _, attemptID := range f.order {
		all = append(all, *f.entries[attemptID])
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeRankingStore) seed(totals ...int) {
	for i, total := range totals {
		f.Upsert(&model.UserRanking{
			AttemptID:   fmt.Sprintf("seed-%d", i),
			UserName:    fmt.Sprintf("用户%d", i),
			TotalScore:  total,
			CompletedAt: time.Now(),
		})
	}
}

// 提交记录按最新在前排列，和仓库层的排序约定一致
func submissionsNewestFirst(attemptID string, entries ...model.QuizSubmission) *fakeSubmissionLister {
	return &fakeSubmissionLister{byAttempt: map[string][]model.QuizSubmission{attemptID: entries}}
}

func TestCompleteSumsLatestSubmissionPerQuestion(t *testing.T) {
	lister := submissionsNewestFirst("attempt-1",
		model.QuizSubmission{QuestionKey: "step1-q1", Score: 5},
		model.QuizSubmission{QuestionKey: "step1-q1", Score: 3},
		model.QuizSubmission{QuestionKey: "step1-q2", Score: 2},
	)
	store := newFakeRankingStore()
	svc := NewRankingService(lister, store, nil, 10, time.Minute)

	result, err := svc.Complete("attempt-1", "小明")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	// step1-q1 取最新的 5 分，旧的 3 分作废
	if result.TotalScore != 7 {
		t.Errorf("totalScore = %d, want 7", result.TotalScore)
	}
	if entry := store.entries["attempt-1"]; entry == nil || entry.TotalScore != 7 {
		t.Errorf("排行榜行未正确写入: %+v", entry)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	lister := submissionsNewestFirst("attempt-1",
		model.QuizSubmission{QuestionKey: "step1-q1", Score: 4},
	)
	store := newFakeRankingStore()
	svc := NewRankingService(lister, store, nil, 10, time.Minute)

	first, err := svc.Complete("attempt-1", "小明")
	if err != nil {
		t.Fatalf("first Complete: %v", err)
	}
	second, err := svc.Complete("attempt-1", "小明")
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}

	if first.TotalScore != second.TotalScore {
		t.Errorf("两次结算总分不一致: %d vs %d", first.TotalScore, second.TotalScore)
	}
	if len(store.entries) != 1 {
		t.Errorf("排行榜行数 = %d, want 1，重复结算不应新增行", len(store.entries))
	}
}

func TestCompleteCompetitionRanking(t *testing.T) {
	// 已有总分 10、10、7，同分并列，排名按严格更高的不同分值数 + 1
	cases := []struct {
		name     string
		total    int
		wantRank int
	}{
		{"并列第一", 10, 1},
		{"并列第二", 7, 2},
		{"垫底", 3, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeRankingStore()
			store.seed(10, 10, 7)
			lister := submissionsNewestFirst("attempt-x",
				model.QuizSubmission{QuestionKey: "step1-q1", Score: tc.total},
			)
			svc := NewRankingService(lister, store, nil, 10, time.Minute)

			result, err := svc.Complete("attempt-x", "小红")
			if err != nil {
				t.Fatalf("Complete: %v", err)
			}
			if result.Rank == nil {
				t.Fatal("rank 不应为空")
			}
			if *result.Rank != tc.wantRank {
				t.Errorf("rank = %d, want %d", *result.Rank, tc.wantRank)
			}
		})
	}
}

func TestCompleteRankReadFailureStillSucceeds(t *testing.T) {
	store := newFakeRankingStore()
	store.countErr = errors.New("db timeout")
	lister := submissionsNewestFirst("attempt-1",
		model.QuizSubmission{QuestionKey: "step1-q1", Score: 4},
	)
	svc := NewRankingService(lister, store, nil, 10, time.Minute)

	result, err := svc.Complete("attempt-1", "小明")
	if err != nil {
		t.Fatalf("排名读取失败不应影响结算: %v", err)
	}
	if result.TotalScore != 4 {
		t.Errorf("totalScore = %d, want 4", result.TotalScore)
	}
	if result.Rank != nil {
		t.Errorf("rank = %v, want nil", *result.Rank)
	}
}

func TestListRankingsPagination(t *testing.T) {
	store := newFakeRankingStore()
	totals := make([]int, 12)
	for i := range totals {
		totals[i] = 50 - i
	}
	store.seed(totals...)
	svc := NewRankingService(&fakeSubmissionLister{}, store, nil, 10, time.Minute)

	page1, err := svc.ListRankings(1)
	if err != nil {
		t.Fatalf("ListRankings(1): %v", err)
	}
	if len(page1.Entries) != 10 || !page1.HasMore {
		t.Errorf("page1: %d entries, hasMore=%v, want 10 条且 hasMore=true", len(page1.Entries), page1.HasMore)
	}

	page2, err := svc.ListRankings(2)
	if err != nil {
		t.Fatalf("ListRankings(2): %v", err)
	}
	if len(page2.Entries) != 2 || page2.HasMore {
		t.Errorf("page2: %d entries, hasMore=%v, want 2 条且 hasMore=false", len(page2.Entries), page2.HasMore)
	}

	page3, err := svc.ListRankings(3)
	if err != nil {
		t.Fatalf("ListRankings(3): %v", err)
	}
	if len(page3.Entries) != 0 || page3.HasMore {
		t.Errorf("page3 应为空页: %+v", page3)
	}
}

func TestListRankingsPageUnderflow(t *testing.T) {
	store := newFakeRankingStore()
	store.seed(10)
	svc := NewRankingService(&fakeSubmissionLister{}, store, nil, 10, time.Minute)

	page, err := svc.ListRankings(0)
	if err != nil {
		t.Fatalf("ListRankings(0): %v", err)
	}
	if page.Page != 1 || len(page.Entries) != 1 {
		t.Errorf("非法页码应当回落到第 1 页: %+v", page)
	}
}

func newCacheBackedService(t *testing.T, store *fakeRankingStore, lister SubmissionLister) (*RankingService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRankingService(lister, store, rdb, 10, time.Minute), mr
}

func TestListRankingsServesFromCache(t *testing.T) {
	store := newFakeRankingStore()
	store.seed(10, 8)
	svc, _ := newCacheBackedService(t, store, &fakeSubmissionLister{})

	if _, err := svc.ListRankings(1); err != nil {
		t.Fatalf("预热缓存: %v", err)
	}
	hits := store.listHits

	page, err := svc.ListRankings(1)
	if err != nil {
		t.Fatalf("ListRankings: %v", err)
	}
	if store.listHits != hits {
		t.Errorf("缓存命中时不应再查库，查询次数 %d -> %d", hits, store.listHits)
	}
	if len(page.Entries) != 2 {
		t.Errorf("缓存页内容不对: %+v", page)
	}
}

func TestCompleteInvalidatesRankingCache(t *testing.T) {
	store := newFakeRankingStore()
	store.seed(10)
	lister := submissionsNewestFirst("attempt-new",
		model.QuizSubmission{QuestionKey: "step1-q1", Score: 9},
	)
	svc, mr := newCacheBackedService(t, store, lister)

	if _, err := svc.ListRankings(1); err != nil {
		t.Fatalf("预热缓存: %v", err)
	}
	if !mr.Exists(rankingCacheKey(1)) {
		t.Fatal("预热后缓存键应存在")
	}

	if _, err := svc.Complete("attempt-new", "小红"); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if mr.Exists(rankingCacheKey(1)) {
		t.Error("结算后排行榜缓存应被清除")
	}

	page, err := svc.ListRankings(1)
	if err != nil {
		t.Fatalf("ListRankings: %v", err)
	}
	if len(page.Entries) != 2 {
		t.Errorf("结算后的新行未出现在排行榜: %+v", page)
	}
}
