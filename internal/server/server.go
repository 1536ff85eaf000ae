// Package server exposes the per-collection read/write contract over a
// localhost HTTP API. It is the boundary the presentation layer talks to;
// no business rules live here.
package server

import (
	"context"
	"net/http"
	"time"

	clientdomain "github.com/billfold/billfold/internal/client/domain"
	companydomain "github.com/billfold/billfold/internal/company/domain"
	"github.com/billfold/billfold/internal/config"
	invoicedomain "github.com/billfold/billfold/internal/invoice/domain"
	obsmiddleware "github.com/billfold/billfold/internal/observability/logger"
	productdomain "github.com/billfold/billfold/internal/product/domain"
	"github.com/billfold/billfold/internal/providers/pdf"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

type ServerParam struct {
	fx.In

	Engine     *gin.Engine
	Log        *zap.Logger
	CompanySvc companydomain.Service
	ClientSvc  clientdomain.Service
	ProductSvc productdomain.Service
	InvoiceSvc invoicedomain.Service
	PDF        pdf.Provider
}

type Server struct {
	engine     *gin.Engine
	log        *zap.Logger
	companySvc companydomain.Service
	clientSvc  clientdomain.Service
	productSvc productdomain.Service
	invoiceSvc invoicedomain.Service
	pdf        pdf.Provider
}

func NewServer(p ServerParam) *Server {
	return &Server{
		engine:     p.Engine,
		log:        p.Log.Named("server"),
		companySvc: p.CompanySvc,
		clientSvc:  p.ClientSvc,
		productSvc: p.ProductSvc,
		invoiceSvc: p.InvoiceSvc,
		pdf:        p.PDF,
	}
}

// RegisterAPIRoutes binds the collection contract under /api.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/company", s.GetCompany)
	api.PUT("/company", s.UpdateCompany)
	api.DELETE("/company", s.ClearCompany)

	api.GET("/clients", s.ListClients)
	api.POST("/clients", s.CreateClient)
	api.PATCH("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices/new", s.NewInvoiceDraft)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.GET("/invoices/:id/draft", s.EditInvoiceDraft)
	api.PUT("/invoices/:id", s.SaveInvoice)
	api.POST("/invoices/:id/status", s.TransitionInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.GET("/invoices/:id/pdf", s.ExportInvoicePDF)

	api.GET("/summary", s.GetSummary)
}

func registerRoutes(s *Server) {
	s.RegisterAPIRoutes()
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			log.Info("http server listening", zap.String("addr", cfg.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
