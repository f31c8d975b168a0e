package handlers

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/SscSPs/cashflow_ledger/cmd/docs"
	portssvc "github.com/SscSPs/cashflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashflow_ledger/internal/dto"
	"github.com/SscSPs/cashflow_ledger/internal/middleware"
	"github.com/SscSPs/cashflow_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var registerValidatorsOnce sync.Once

// RegisterBindingValidators installs the custom DTO validation rules on gin's
// validator. It is safe to call more than once.
func RegisterBindingValidators() error {
	var err error
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		err = dto.RegisterValidators(v)
	})
	return err
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Extra middleware (rate limiting, analytics) runs after authentication on /api/v1.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	v1Middleware ...gin.HandlerFunc,
) error {
	if err := RegisterBindingValidators(); err != nil {
		return err
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, v1Middleware)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	extra []gin.HandlerFunc,
) {
	chain := append([]gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)}, extra...)
	v1 := r.Group("/api/v1", chain...)

	RegisterPayableRoutes(v1, services.Payable, services.Recurrence)
	RegisterReceivableRoutes(v1, services.Receivable)
	RegisterLedgerRoutes(v1, services.ManualEntry, services.BalanceAdjustment, services.Category)
	RegisterCashFlowRoutes(v1, services.CashFlow, services.Alert, services.DRE)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
