package handler

import (
    "github.com/gin-gonic/gin/binding"
    "github.com/go-playground/validator/v10"

    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/service"
)

// Handler 聚合各资源的 HTTP 处理器
type Handler struct {
    auth     *service.AuthService
    products *service.ProductService
    orders   *service.OrderService
    catalog  *service.CatalogService
    reviews  *service.ReviewService
    staff    *service.StaffService
    cms      *service.CMSService
    inquiry  *service.InquiryService
    reports  *service.ReportService
}

func New(
    auth *service.AuthService,
    products *service.ProductService,
    orders *service.OrderService,
    catalog *service.CatalogService,
    reviews *service.ReviewService,
    staff *service.StaffService,
    cms *service.CMSService,
    inquiry *service.InquiryService,
    reports *service.ReportService,
) *Handler {
    registerValidations()
    return &Handler{
        auth:     auth,
        products: products,
        orders:   orders,
        catalog:  catalog,
        reviews:  reviews,
        staff:    staff,
        cms:      cms,
        inquiry:  inquiry,
        reports:  reports,
    }
}

// registerValidations 注册自定义校验规则（season 闭集）
func registerValidations() {
    if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
        _ = v.RegisterValidation("season", func(fl validator.FieldLevel) bool {
            _, ok := model.NormalizeSeason(fl.Field().String())
            return ok
        })
    }
}
