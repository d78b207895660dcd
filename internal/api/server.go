package api

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/oktoberfest-api/docs"
	v1 "github.com/vietanh2810/oktoberfest-api/internal/api/handler/v1"
	"github.com/vietanh2810/oktoberfest-api/internal/api/middleware"
	"github.com/vietanh2810/oktoberfest-api/internal/clock"
	"github.com/vietanh2810/oktoberfest-api/internal/config"
	"github.com/vietanh2810/oktoberfest-api/internal/domain"
	"github.com/vietanh2810/oktoberfest-api/internal/repository"
	"github.com/vietanh2810/oktoberfest-api/internal/repository/dao"
	"github.com/vietanh2810/oktoberfest-api/internal/service"
	"github.com/vietanh2810/oktoberfest-api/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// Stores bundles the DAOs behind both stores. They are built once per server.
type Stores struct {
	Activities repository.ActivityDAO
	Tickets    repository.TicketDAO
}

func MemoryStores() Stores {
	return Stores{
		Activities: dao.NewMemoryActivityDAO(),
		Tickets:    dao.NewMemoryTicketDAO(),
	}
}

func PostgresStores(db *gorm.DB) Stores {
	return Stores{
		Activities: dao.NewActivityDAO(db),
		Tickets:    dao.NewTicketDAO(db),
	}
}

func NewServer(ctx context.Context, conf *config.AppConfig, stores Stores, clk clock.Clock) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	activityHandler, err := s.initActivityHandler(ctx, stores.Activities)
	if err != nil {
		return nil, err
	}
	ticketHandler := s.initTicketHandler(stores.Tickets, clk)
	siteHandler := v1.NewSiteHandler(conf.API.PublicDir)
	s.MountHandlers(activityHandler, ticketHandler, siteHandler)

	return s, nil
}

func (s *Server) initActivityHandler(ctx context.Context, activityDAO repository.ActivityDAO) (*v1.ActivityHandler, error) {
	repo := repository.NewActivityRepository(activityDAO)
	if err := repo.Seed(ctx, domain.SeedActivities()); err != nil {
		return nil, fmt.Errorf("repo.Seed -> %w", err)
	}

	images, err := storage.NewDiskImageStore(filepath.Join(s.Config.API.PublicDir, service.ImagesDir), s.Config.API.MaxUploadBytes)
	if err != nil {
		return nil, fmt.Errorf("storage.NewDiskImageStore -> %w", err)
	}

	svc := service.NewActivityService(repo, images)
	handler := v1.NewActivityHandler(svc)

	return handler, nil
}

func (s *Server) initTicketHandler(ticketDAO repository.TicketDAO, clk clock.Clock) *v1.TicketHandler {
	repo := repository.NewTicketRepository(ticketDAO)
	svc := service.NewTicketService(repo, clk)
	handler := v1.NewTicketHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(middleware.Recovery())
	s.Router.Use(requestid.New(requestid.WithGenerator(uuid.NewString)))
	s.Router.Use(middleware.ZapLogger())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(activityHandler *v1.ActivityHandler, ticketHandler *v1.TicketHandler, siteHandler *v1.SiteHandler) {
	const basePath = "/api"

	api := s.Router.Group(basePath)
	{
		api.GET("/activities", activityHandler.HandleGetActivities)
		api.GET("/activities/:id", activityHandler.HandleGetActivity)
		api.POST("/activities", activityHandler.HandleCreateActivity)

		api.GET("/tickets", ticketHandler.HandleGetTickets)
		api.POST("/tickets", ticketHandler.HandleCreateTicket)
	}

	s.Router.GET("/health", v1.HandleHealthcheck)
	s.Router.GET("/", siteHandler.HandleIndex)
	s.Router.HEAD("/", siteHandler.HandleIndex)
	s.Router.NoRoute(siteHandler.HandleNoRoute)

	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Oktoberfest API"
	docs.SwaggerInfo.Description = "Festival activities and ticket orders."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
