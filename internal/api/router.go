package api

import (
    sentrygin "github.com/getsentry/sentry-go/gin"
    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

    "github.com/d60-Lab/desi-delights/internal/api/handler"
    "github.com/d60-Lab/desi-delights/internal/api/middleware"
    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/service"
)

// Options 路由装配选项
type Options struct {
    Mode          string // gin.DebugMode / gin.ReleaseMode
    SentryEnabled bool
    RateRPS       float64
    RateBurst     int
}

// NewRouter 装配中间件栈与全部路由
func NewRouter(h *handler.Handler, auth *service.AuthService, opts Options) *gin.Engine {
    if opts.Mode != "" {
        gin.SetMode(opts.Mode)
    }
    if opts.RateRPS <= 0 {
        opts.RateRPS = 100
    }
    if opts.RateBurst <= 0 {
        opts.RateBurst = 200
    }

    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(middleware.RequestLog())
    r.Use(gzip.Gzip(gzip.DefaultCompression))
    r.Use(otelgin.Middleware("desi-delights"))
    r.Use(middleware.RateLimit(opts.RateRPS, opts.RateBurst))
    if opts.SentryEnabled {
        r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
    }

    r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    authed := middleware.Authenticated(auth)
    admin := middleware.RequireRole(model.RoleAdmin)
    staff := middleware.RequireRole(model.RoleStaff, model.RoleAdmin)

    api := r.Group("/api")
    {
        // 商品与推荐位
        api.GET("/products", h.ListProducts)
        api.GET("/products/best-selling", h.BestSelling)
        api.GET("/products/season/:season", h.SeasonalProducts)
        api.GET("/products/:id", h.GetProduct)
        api.POST("/products", authed, admin, h.CreateProduct)
        api.PUT("/products/:id", authed, admin, h.UpdateProduct)
        api.DELETE("/products/:id", authed, admin, h.DeleteProduct)

        api.GET("/brands", h.ListBrands)
        api.POST("/brands", authed, admin, h.CreateBrand)
        api.GET("/categories", h.ListCategories)
        api.POST("/categories", authed, admin, h.CreateCategory)

        // 评价
        api.GET("/products/:id/reviews", h.ListReviews)
        api.POST("/products/:id/reviews", authed, h.AddReview)

        // 订单（下单允许游客）
        api.POST("/orders", middleware.OptionalAuth(auth), h.CreateOrder)
        api.GET("/orders/mine", authed, h.ListMyOrders)
        api.GET("/orders/:id", authed, h.GetOrder)
        api.PUT("/orders/:id/status", authed, admin, h.SetOrderStatus)
        api.GET("/orders/:id/invoice", authed, h.GetInvoice)

        // 用户
        api.POST("/users/register", h.Register)
        api.POST("/users/login", h.Login)
        api.GET("/users/me", authed, h.Me)

        // 员工 HR
        st := api.Group("/staff", authed, staff)
        {
            st.POST("/attendance/check-in", h.CheckIn)
            st.POST("/attendance/check-out", h.CheckOut)
            st.GET("/attendance", h.ListAttendance)
            st.POST("/leaves", h.RequestLeave)
            st.GET("/leaves", h.ListLeaves)
            st.PUT("/leaves/:id/decision", admin, h.DecideLeave)
            st.GET("/holidays", h.ListHolidays)
            st.POST("/holidays", admin, h.AddHoliday)
        }

        // CMS
        api.GET("/pages/:slug", h.GetPage)
        api.PUT("/pages/:slug", authed, admin, h.UpsertPage)

        // 咨询
        api.POST("/inquiries", h.CreateInquiry)
        api.GET("/inquiries", authed, admin, h.ListInquiries)
        api.PUT("/inquiries/:id/resolve", authed, admin, h.ResolveInquiry)

        // 报表
        api.GET("/admin/reports/summary", authed, admin, h.ReportSummary)
    }

    return r
}
