package repository

import (
	"errors"
	"testing"
	"time"

	"git_quiz_backend/internal/model"
	"git_quiz_backend/internal/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestStateStore(t *testing.T) (*AttemptStateStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewAttemptStateStore(rdb, 24*time.Hour), mr
}

func TestAttemptStateSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStateStore(t)

	state := &model.AttemptState{
		AttemptID:   "attempt-1",
		UserName:    "小明",
		CurrentStep: 2,
		StepData: map[int]*model.StepState{
			1: {
				Answers:     map[string]string{"step1-q1": "git add 把改动放入暂存区"},
				Feedback:    map[string]model.StepFeedback{"step1-q1": {Score: 4, Feedback: "理解正确"}},
				IsSubmitted: true,
				SubmitCount: 1,
			},
		},
	}
	if err := store.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load("attempt-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UserName != "小明" || loaded.CurrentStep != 2 {
		t.Errorf("loaded = %+v", loaded)
	}
	step := loaded.StepData[1]
	if step == nil || !step.IsSubmitted || step.Answers["step1-q1"] == "" {
		t.Errorf("步骤进度丢失: %+v", step)
	}
	if fb, ok := step.Feedback["step1-q1"]; !ok || fb.Score != 4 {
		t.Errorf("评分反馈丢失: %+v", fb)
	}
	if loaded.SavedAt.IsZero() {
		t.Error("SavedAt 应在保存时写入")
	}
}

func TestAttemptStateSaveSetsTTL(t *testing.T) {
	store, mr := newTestStateStore(t)

	if err := store.Save(&model.AttemptState{AttemptID: "attempt-1", UserName: "小明"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	ttl := mr.TTL(attemptStateKeyPrefix + "attempt-1")
	if ttl != 24*time.Hour {
		t.Errorf("ttl = %v, want 24h", ttl)
	}

	// 过期后进度不可再读
	mr.FastForward(25 * time.Hour)
	if _, err := store.Load("attempt-1"); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Errorf("过期后 Load 应返回 ErrAttemptNotFound, got %v", err)
	}
}

func TestAttemptStateLoadMissing(t *testing.T) {
	store, _ := newTestStateStore(t)
	if _, err := store.Load("no-such-attempt"); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Errorf("err = %v, want ErrAttemptNotFound", err)
	}
}

func TestAttemptStateDelete(t *testing.T) {
	store, _ := newTestStateStore(t)

	if err := store.Save(&model.AttemptState{AttemptID: "attempt-1", UserName: "小明"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete("attempt-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load("attempt-1"); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Errorf("删除后 Load 应返回 ErrAttemptNotFound, got %v", err)
	}
}
