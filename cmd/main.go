package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	v1 "wxwriter/api/v1"
	"wxwriter/config"
	"wxwriter/dao"
	"wxwriter/database"
	"wxwriter/internal/auth"
	"wxwriter/internal/llm"
	myvalidator "wxwriter/internal/validator"
	"wxwriter/internal/wechatmp"
	"wxwriter/logger"
	"wxwriter/service"
)

func main() {
	// 初始化配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "."
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg, os.Stdout)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库和 Redis
	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("open database failed", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	rdb := database.OpenRedis(cfg)

	// 外部服务客户端
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expire)
	llmClient := llm.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey)
	wechatClient := wechatmp.NewClient(cfg.WeChat.AppID, cfg.WeChat.AppSecret, cfg.WeChat.BaseURL)

	// 初始化 DAO 和 Service
	userDAO := dao.NewUserDAO(db)
	topicDAO := dao.NewHotTopicDAO(db)
	articleDAO := dao.NewArticleDAO(db)
	logDAO := dao.NewLogDAO(db)

	userService := service.NewUserService(userDAO, tokens)
	topicService := service.NewHotTopicService(topicDAO, rdb)
	articleService := service.NewArticleService(articleDAO, logDAO)
	generationService := service.NewGenerationService(userDAO, articleDAO, logDAO, llmClient, cfg.OpenAI.Model)
	wechatService := service.NewWeChatService(articleDAO, logDAO, wechatClient)

	// 注册自定义校验器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("password", myvalidator.IsPassword); err != nil {
			slog.Error("register validator failed", "error", err)
			os.Exit(1)
		}
	}

	// 初始化路由
	r := gin.Default()
	router := &v1.Router{
		Users:     v1.NewUserAPI(userService),
		HotTopics: v1.NewHotTopicAPI(topicService),
		Articles:  v1.NewArticleAPI(articleService),
		AI:        v1.NewAIAPI(generationService),
		WeChat:    v1.NewWeChatAPI(wechatService),
		Tokens:    tokens,
		Redis:     rdb,
	}
	router.Register(r)

	// 启动服务
	slog.Info("server starting", "port", cfg.Server.Port, "driver", cfg.Database.Driver)
	if err := r.Run(cfg.Server.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
