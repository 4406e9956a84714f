package main

import (
	"log"

	"github.com/Hua202512/rundayapp/internal/config"
	"github.com/Hua202512/rundayapp/internal/db"
	"github.com/Hua202512/rundayapp/internal/handler"
	"github.com/Hua202512/rundayapp/internal/router"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	api, err := handler.NewAPI(db.DB, cfg.MaxImageEdge)
	if err != nil {
		log.Fatalf("failed to restore application state: %v", err)
	}

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
