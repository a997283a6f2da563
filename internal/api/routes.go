package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"miniboard/internal/api/handlers"
	"miniboard/internal/middleware"
	"miniboard/internal/service"
	"miniboard/internal/web"
)

// Options 是建立路由所需的共用元件
type Options struct {
	Sessions *middleware.SessionManager
	Metrics  *middleware.Metrics
	Logger   *logrus.Logger
	Title    string
}

// NewRouter 創建 gin.Engine 並設置中間件、樣板與路由
func NewRouter(services *service.Services, opts Options) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.Logger != nil {
		r.Use(middleware.Logger(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	r.Use(opts.Sessions.Middleware())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	SetupRoutes(r, services, opts)
	return r, nil
}

func SetupRoutes(r *gin.Engine, services *service.Services, opts Options) {
	// 初始化 handlers
	boardHandler := handlers.NewBoardHandler(services.BoardService, opts.Metrics, opts.Title)
	userHandler := handlers.NewUserHandler(services.UserService, opts.Sessions, opts.Title)
	wsHandler := handlers.NewWebSocketHandler(services.Hub)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{
			Error: true,
			Data:  handlers.ErrorData{Message: "not found"},
		})
	})

	// 基本的健康檢查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	if opts.Metrics != nil {
		r.GET("/metrics", opts.Metrics.Handler())
	}

	// 登入與註冊
	users := r.Group("/users")
	{
		users.GET("", handlers.WithLogin(userHandler.LoginPage))
		users.POST("", handlers.WithLogin(userHandler.Login))
		users.GET("/add", handlers.WithLogin(userHandler.RegisterPage))
		users.POST("/add", handlers.WithLogin(userHandler.Register))
		users.GET("/logout", handlers.WithLogin(userHandler.Logout))
	}

	// 即時更新
	r.GET("/ws", handlers.WithLogin(wsHandler.HandleWebSocket))

	// 留言板
	r.GET("/", handlers.WithLogin(boardHandler.Index))
	r.POST("/", handlers.WithLogin(boardHandler.PostMessage))
	r.GET("/:page", handlers.WithLogin(boardHandler.ListPage))
}
