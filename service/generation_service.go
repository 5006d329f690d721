package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wxwriter/internal/llm"
	"wxwriter/model"
)

type textGenerator interface {
	ChatCompletion(ctx context.Context, model string, messages []llm.Message, maxTokens int) (*llm.Completion, error)
}

type generationLogStore interface {
	CreateGenerationLog(log *model.GenerationLog) error
	UpdateGenerationLog(log *model.GenerationLog) error
	ListGenerationLogs(userID uint64, page, limit int) ([]model.GenerationLog, int64, error)
	CreateHistory(entry *model.ArticleHistory) error
}

const systemPrompt = "You are a professional content writer specializing in creating engaging articles for social media platforms like WeChat. Create original, informative, and engaging content that follows the specified requirements."

// 生成参数的缺省值
const (
	defaultArticleType = "educational"
	defaultStyle       = "professional"
	defaultStructure   = "standard"
	defaultWordCount   = 1000
	maxTokensCeiling   = 4000
)

var titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// AdditionalRequirements 生成时的可选附加要求
type AdditionalRequirements struct {
	IncludeData        bool   `json:"include_data"`
	IncludeInteraction bool   `json:"include_interaction"`
	Tone               string `json:"tone"`
}

// GenerateInput 一次生成请求
type GenerateInput struct {
	Topic                  string
	ArticleType            string
	Style                  string
	Structure              string
	WordCount              int
	AdditionalRequirements *AdditionalRequirements
	AIModel                string
	HotTopicID             *uint64
}

// GenerationInfo 返回给调用方的生成元数据
type GenerationInfo struct {
	ModelUsed             string `json:"model_used"`
	TokensUsed            int    `json:"tokens_used"`
	GenerationTimeSeconds int    `json:"generation_time_seconds"`
	ActualWordCount       int    `json:"actual_word_count"`
}

// GenerationService 编排一次生成：限额检查 → 先写日志 → 调用模型 →
// 回填日志 → 落库文章。日志行在任何分支都会保留。
type GenerationService struct {
	users        userStore
	articles     articleStore
	logs         generationLogStore
	generator    textGenerator
	defaultModel string
}

func NewGenerationService(users userStore, articles articleStore, logs generationLogStore, generator textGenerator, defaultModel string) *GenerationService {
	return &GenerationService{
		users:        users,
		articles:     articles,
		logs:         logs,
		generator:    generator,
		defaultModel: defaultModel,
	}
}

func (in *GenerateInput) applyDefaults(fallbackModel string) {
	if in.ArticleType == "" {
		in.ArticleType = defaultArticleType
	}
	if in.Style == "" {
		in.Style = defaultStyle
	}
	if in.Structure == "" {
		in.Structure = defaultStructure
	}
	if in.WordCount <= 0 {
		in.WordCount = defaultWordCount
	}
	if in.AIModel == "" {
		in.AIModel = fallbackModel
	}
}

// buildPrompt 拼接生成指令。顺序固定：基础句 → 结构 → 目标长度 →
// 附加要求 → 面向微信读者的收尾，保证同样输入得到同样提示词。
func buildPrompt(in GenerateInput) string {
	prompt := fmt.Sprintf("Write a %s article about \"%s\" in a %s style. ", in.ArticleType, in.Topic, in.Style)

	switch in.Structure {
	case "listicle":
		prompt += "Use a list format with clear headings and bullet points. "
	case "how_to":
		prompt += "Use a step-by-step format with clear instructions. "
	case "news":
		prompt += "Use a news article format with an engaging headline and informative content. "
	default:
		prompt += "Use a standard article format with introduction, body, and conclusion. "
	}

	prompt += fmt.Sprintf("Target approximately %d words. ", in.WordCount)

	if req := in.AdditionalRequirements; req != nil {
		if req.IncludeData {
			prompt += "Include relevant data and statistics to support the content. "
		}
		if req.IncludeInteraction {
			prompt += "Include engaging questions or calls-to-action for reader interaction. "
		}
		if req.Tone != "" {
			prompt += fmt.Sprintf("Maintain a %s tone throughout. ", req.Tone)
		}
	}

	prompt += "Make the content engaging, informative, and suitable for a WeChat audience. Ensure the content is original and well-structured."
	return prompt
}

// maxTokensFor 预算按约 2 token/词估算，上限 4000
func maxTokensFor(wordCount int) int {
	budget := wordCount * 2
	if budget > maxTokensCeiling {
		return maxTokensCeiling
	}
	return budget
}

// extractTitle 取生成文本中第一个一级标题，没有则回退到话题名
func extractTitle(content, topic string) string {
	if m := titlePattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return fmt.Sprintf("Article about %s", topic)
}

// Generate 执行一次生成并返回新建的草稿文章。
func (s *GenerationService) Generate(ctx context.Context, userID uint64, in GenerateInput) (*model.Article, *GenerationInfo, error) {
	in.applyDefaults(s.defaultModel)

	// 当日限额：统计自然日零点以来已创建的文章数
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	createdToday, err := s.articles.CountCreatedSince(userID, startOfDay)
	if err != nil {
		return nil, nil, err
	}
	if createdToday >= int64(user.DailyArticleLimit) {
		return nil, nil, &DailyLimitError{Limit: user.DailyArticleLimit}
	}

	prompt := buildPrompt(in)

	// 先写日志行，即使进程在调用中途挂掉，这次尝试也有据可查
	logRow := &model.GenerationLog{
		UserID:    userID,
		Prompt:    prompt,
		ModelUsed: in.AIModel,
		Success:   false,
	}
	if err := s.logs.CreateGenerationLog(logRow); err != nil {
		return nil, nil, err
	}

	started := time.Now()
	completion, err := s.generator.ChatCompletion(ctx, in.AIModel, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}, maxTokensFor(in.WordCount))
	if err != nil {
		logRow.ErrorMessage = err.Error()
		_ = s.logs.UpdateGenerationLog(logRow)
		return nil, nil, &UpstreamError{Op: "generate article", Err: err}
	}

	duration := int(time.Since(started).Round(time.Second).Seconds())
	logRow.Response = completion.Content
	logRow.TokensUsed = completion.TokensUsed
	logRow.GenerationTimeSeconds = duration
	logRow.Success = true
	if err := s.logs.UpdateGenerationLog(logRow); err != nil {
		return nil, nil, err
	}

	actualWordCount := CountWords(completion.Content)
	article := &model.Article{
		UserID:                userID,
		HotTopicID:            in.HotTopicID,
		Title:                 extractTitle(completion.Content, in.Topic),
		Content:               completion.Content,
		ArticleType:           in.ArticleType,
		Style:                 in.Style,
		Structure:             in.Structure,
		WordCount:             actualWordCount,
		Status:                model.ArticleStatusDraft,
		AIModel:               in.AIModel,
		GenerationTimeSeconds: duration,
		WeChatSyncStatus:      model.SyncStatusPending,
	}
	if req := in.AdditionalRequirements; req != nil {
		article.AdditionalRequirements = datatypes.JSONMap{
			"include_data":        req.IncludeData,
			"include_interaction": req.IncludeInteraction,
			"tone":                req.Tone,
		}
	}
	if err := s.articles.Create(article); err != nil {
		return nil, nil, err
	}

	// 日志行指回新文章；历史表记一条 ai_generation 来源
	logRow.ArticleID = &article.ID
	_ = s.logs.UpdateGenerationLog(logRow)
	_ = s.logs.CreateHistory(&model.ArticleHistory{
		UserID:    userID,
		ArticleID: article.ID,
		Action:    model.HistoryActionCreated,
		Metadata:  datatypes.JSONMap{"source": "ai_generation", "model": in.AIModel},
	})

	return article, &GenerationInfo{
		ModelUsed:             in.AIModel,
		TokensUsed:            completion.TokensUsed,
		GenerationTimeSeconds: duration,
		ActualWordCount:       actualWordCount,
	}, nil
}

// History 当前用户的生成记录
func (s *GenerationService) History(userID uint64, page, limit int) ([]model.GenerationLog, int64, error) {
	return s.logs.ListGenerationLogs(userID, page, limit)
}
