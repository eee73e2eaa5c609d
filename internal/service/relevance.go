package service

import (
	"regexp"
	"strings"
	"unicode"
)

// 无意义回答的黑名单。统一去掉空白、转小写后整串匹配：
// 键盘乱敲、纯语气词、各种“不知道”、纯笑声或标点。
var junkAnswerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:asdf|sdfg|qwer|wert|zxcv|xcvb|hjkl|asd|qwe|zxc|jkl)+$`),
	regexp.MustCompile(`^(?:aaa+|abc+|(?:test)+|(?:测试)+|1234*|0000+)$`),
	regexp.MustCompile(`^(?:哈|呵|嘿|嘻|嗯|哦|噢|呃|额|啊|诶|h|ㅋ|ㅎ|w)+$`),
	regexp.MustCompile(`^(?:ok|okay|好|好的|好吧|行|是|对|嗯嗯|哦哦|lol|lmao)$`),
	regexp.MustCompile(`^(?:不知道|不造|不会|不清楚|不懂|没思路|随便|idk|idunno|dunno|idontknow|idon'tknow|noidea)$`),
	regexp.MustCompile(`^[0-9.,;:!?~\-_*，。；：！？…]+$`),
}

var nonAlnumPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// IsPlausiblyRelevant 判断回答是否可能与题目相关的本地启发式闸门。
// 它不是语义裁判，只负责拦下明显跑题或敷衍的回答，
// 以及外部模型偶发的过度宽松判定；对模型的相关性判断只有否决权。
func IsPlausiblyRelevant(question, referenceAnswer, answer string) bool {
	stripped := strings.ToLower(removeWhitespace(answer))
	if stripped == "" {
		return false
	}
	for _, p := range junkAnswerPatterns {
		if p.MatchString(stripped) {
			return false
		}
	}

	answerTokens := tokenize(answer)
	referenceTokens := tokenize(question + " " + referenceAnswer)
	if len(answerTokens) == 0 || len(referenceTokens) == 0 {
		return false
	}

	// 至少一个公共词元即视为可能相关
	for token := range answerTokens {
		if _, ok := referenceTokens[token]; ok {
			return true
		}
	}
	return false
}

// tokenize 小写化后把所有非字母数字字符折叠成空格再切分，丢弃长度不足 2 的词元。
// 汉字会连成长词元，中文同义改写很难整串撞上，因此对汉字串额外登记相邻二字组，
// 让“暂存区”与“暂存区域”这类表述也能产生交集。
func tokenize(text string) map[string]struct{} {
	normalized := nonAlnumPattern.ReplaceAllString(strings.ToLower(text), " ")
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(normalized) {
		runes := []rune(field)
		if len(runes) < 2 {
			continue
		}
		tokens[field] = struct{}{}
		for i := 0; i+1 < len(runes); i++ {
			if unicode.Is(unicode.Han, runes[i]) && unicode.Is(unicode.Han, runes[i+1]) {
				tokens[string(runes[i:i+2])] = struct{}{}
			}
		}
	}
	return tokens
}

func removeWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
