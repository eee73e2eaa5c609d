package service

import "testing"

const (
	testQuestion  = "commit 保存的是 working directory 还是 staging area？"
	testReference = "保存的是 staging area。commit 把 staging area 的快照存入 repository。"
)

func TestIsPlausiblyRelevantRejectsEmptyAndJunk(t *testing.T) {
	junk := []string{
		"",
		"   ",
		"\t\n",
		"asdf",
		"asdfasdf",
		"qwerqwer",
		"zxcv",
		"aaaa",
		"1234",
		"测试测试",
		"哈哈哈",
		"呵呵",
		"嗯嗯嗯",
		"ok",
		"好的",
		"不知道",
		"不会",
		"idk",
		"i don't know",
		"I DON'T KNOW",
		"dunno",
		"。。。",
		"？？？",
		"!!!",
	}

	for _, answer := range junk {
		if IsPlausiblyRelevant(testQuestion, testReference, answer) {
			t.Errorf("expected junk answer %q to be rejected", answer)
		}
	}
}

func TestIsPlausiblyRelevantRejectsNoOverlap(t *testing.T) {
	answers := []string{
		"今天天气真不错",
		"我喜欢吃火锅",
		"the weather is nice today",
	}

	for _, answer := range answers {
		if IsPlausiblyRelevant(testQuestion, testReference, answer) {
			t.Errorf("expected off-topic answer %q to be rejected", answer)
		}
	}
}

func TestIsPlausiblyRelevantAcceptsOverlap(t *testing.T) {
	answers := []string{
		"保存的是 staging area",
		"staging",
		"commit 保存暂存区",
		"STAGING AREA 里的内容",
	}

	for _, answer := range answers {
		if !IsPlausiblyRelevant(testQuestion, testReference, answer) {
			t.Errorf("expected answer %q to pass the guard", answer)
		}
	}
}

func TestIsPlausiblyRelevantHanBigramOverlap(t *testing.T) {
	// 汉字串整体撞不上时，相邻二字组也要能产生交集
	question := "快照保存在哪里？"
	reference := "快照存入仓库"
	if !IsPlausiblyRelevant(question, reference, "存入了快照") {
		t.Errorf("expected han bigram overlap to pass the guard")
	}
}

func TestIsPlausiblyRelevantEmptyReferenceSide(t *testing.T) {
	// 题目和参考答案都没有有效词元时一律拒绝
	if IsPlausiblyRelevant("?", "!", "a proper looking answer") {
		t.Errorf("expected empty reference token set to reject")
	}
}

func TestTokenizeDiscardsShortTokens(t *testing.T) {
	tokens := tokenize("a b 的 git add")
	if _, ok := tokens["a"]; ok {
		t.Errorf("single-rune token should be discarded")
	}
	if _, ok := tokens["git"]; !ok {
		t.Errorf("expected token git to be kept")
	}
	if _, ok := tokens["add"]; !ok {
		t.Errorf("expected token add to be kept")
	}
}
