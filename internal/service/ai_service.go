package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"git_quiz_backend/internal/config"
	"io"
	"net/http"
	"sync"
)

// AIService 封装对外部评分模型（OpenAI 兼容接口）的调用。
// 配置支持热更新，密钥轮换无需重启服务。
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// UpdateConfig 配置文件变更时替换模型参数
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client = &http.Client{Timeout: cfg.RequestTimeout}
}

func (s *AIService) currentConfig() (config.AIConfig, *http.Client) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.client
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []AIChatMessage `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GradeVerdict 模型给出的一次评分判定。
// Malformed 为 true 表示响应缺字段或无法解析，此时其余字段不可信，
// 下游统一按评分失败兜底处理，避免在松散的 JSON 上直接做数值运算。
type GradeVerdict struct {
	Malformed  bool
	IsRelevant bool
	Score      float64
	Feedback   string
}

// 模型回包的原始结构，指针字段用于区分“缺失”和“零值”
type oracleGradeResponse struct {
	IsRelevant *bool    `json:"isRelevant"`
	Score      *float64 `json:"score"`
	Feedback   string   `json:"feedback"`
}

// GradeAnswer 请求外部模型对一道题的自由文本回答打分。
// 每次调用恰好发起一次外部请求，失败不重试，由调用方决定兜底行为。
func (s *AIService) GradeAnswer(question, referenceAnswer, answer string, maxScore int) (GradeVerdict, error) {
	cfg, client := s.currentConfig()

	prompt := fmt.Sprintf(`你是一位批改 Git 学习作业的专家。

题目：%s

参考答案：%s

学生回答：%s

请先判断学生的回答是否在回应这道题目（而不是闲聊、敷衍或者答非所问），
然后对照参考答案按满分 %d 分打分。
打分标准：
- 是否准确理解核心概念
- 表述是否有逻辑、是否清晰
- 技术上的准确性

请严格按以下 JSON 格式回复：
{
  "isRelevant": 回答是否与题目相关（布尔值）,
  "score": 0 到 %d 之间的分数,
  "feedback": "简短评语（1-2句话）"
}`, question, referenceAnswer, answer, maxScore, maxScore)

	reqBody := ChatCompletionRequest{
		Model:       cfg.Model,
		Messages:    []AIChatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.3,
	}
	reqBody.ResponseFormat.Type = "json_object"

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return GradeVerdict{}, err
	}

	req, err := http.NewRequest("POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return GradeVerdict{}, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return GradeVerdict{}, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return GradeVerdict{}, fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return GradeVerdict{}, err
	}
	if len(result.Choices) == 0 {
		return GradeVerdict{}, fmt.Errorf("AI returned no choices")
	}

	return decodeGradeVerdict(result.Choices[0].Message.Content), nil
}

// decodeGradeVerdict 把模型输出的 JSON 严格解码成判定值。
// 提示词明确要求了 isRelevant 字段，因此缺失该字段视为回包异常而不是默认相关。
func decodeGradeVerdict(content string) GradeVerdict {
	var raw oracleGradeResponse
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return GradeVerdict{Malformed: true}
	}
	if raw.Score == nil || raw.IsRelevant == nil {
		return GradeVerdict{Malformed: true}
	}
	return GradeVerdict{
		IsRelevant: *raw.IsRelevant,
		Score:      *raw.Score,
		Feedback:   raw.Feedback,
	}
}
