package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enrique0rtiz/software-pagos/config"
	"github.com/enrique0rtiz/software-pagos/internal/api/handler"
	"github.com/enrique0rtiz/software-pagos/internal/api/router"
	"github.com/enrique0rtiz/software-pagos/internal/ratelimit"
	"github.com/enrique0rtiz/software-pagos/internal/repository"
	"github.com/enrique0rtiz/software-pagos/internal/service"
	"github.com/enrique0rtiz/software-pagos/internal/session"
	"github.com/enrique0rtiz/software-pagos/pkg/database"
	"github.com/enrique0rtiz/software-pagos/pkg/logger"
	pkgredis "github.com/enrique0rtiz/software-pagos/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	// ── 加载配置 ──
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// ── 初始化日志 ──
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	// ── 连接数据库 ──
	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		log.Fatal("连接数据库失败", zap.Error(err))
	}

	// ── 执行数据库迁移 ──
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("获取底层数据库连接失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, log); err != nil {
		log.Fatal("数据库迁移失败", zap.Error(err))
	}

	// ── 连接 Redis（可选，未启用时会话与限流退化为进程内存储）──
	var rdb *pkgredis.Client
	if cfg.Redis.Enabled {
		rdb, err = pkgredis.NewClient(&cfg.Redis, log)
		if err != nil {
			log.Fatal("连接 Redis 失败", zap.Error(err))
		}
	}

	// ── 会话存储 ──
	var sessionStore session.Store
	if rdb != nil {
		sessionStore = session.NewRedisStore(rdb)
		log.Info("会话存储使用 Redis 后端")
	} else {
		sessionStore = session.NewMemoryStore()
		log.Info("会话存储使用进程内存后端")
	}
	sessions := session.NewManager(&cfg.Auth, sessionStore)

	// ── 限流器 ──
	var limiters router.Limiters
	if rdb != nil {
		limiters.API = ratelimit.NewRedisLimiter(rdb, "api", cfg.RateLimit.APIMax, cfg.RateLimit.Window)
		limiters.Login = ratelimit.NewRedisLimiter(rdb, "login", cfg.RateLimit.LoginMax, cfg.RateLimit.Window)
	} else {
		limiters.API = ratelimit.NewMemoryLimiter(cfg.RateLimit.APIMax, cfg.RateLimit.Window)
		limiters.Login = ratelimit.NewMemoryLimiter(cfg.RateLimit.LoginMax, cfg.RateLimit.Window)
	}

	// ── 组装依赖 ──
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, log)
	h := handler.NewHandler(svc, sessions, db, log)

	gin.SetMode(gin.ReleaseMode)
	r := router.Setup(cfg, h, sessions, limiters, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 启动服务器 ──
	go func() {
		log.Info("服务器启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// ── 优雅关闭 ──
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("收到关闭信号，正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("服务器强制关闭", zap.Error(err))
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error("关闭 Redis 连接失败", zap.Error(err))
		}
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("关闭数据库连接失败", zap.Error(err))
	}

	log.Info("服务器已退出")
}
