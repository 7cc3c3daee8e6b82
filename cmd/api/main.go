package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "FormRelay_LandingProject/docs"
	"FormRelay_LandingProject/internal/config"
	"FormRelay_LandingProject/internal/feed"
	"FormRelay_LandingProject/internal/handler"
	"FormRelay_LandingProject/internal/middleware"
	"FormRelay_LandingProject/internal/notify"
	"FormRelay_LandingProject/internal/sheets"
	"FormRelay_LandingProject/internal/storage"
)

// @title        Landing Form Relay API
// @version      1.0
// @description  Captures landing page form submissions, appends them to a spreadsheet and notifies by email.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("main(): no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("main(): invalid configuration: ", err)
	}

	storage.InitDB(cfg.DatabasePath)
	defer storage.CloseDB()

	var store sheets.TabularStore = sheets.Disabled{}
	if cfg.SheetsEnabled() {
		client, err := sheets.NewClient(context.Background(), cfg.CredentialsFile, cfg.SpreadsheetID, cfg.SheetTab)
		if err != nil {
			log.Fatal("main(): failed to create sheets client: ", err)
		}
		store = client
		log.Printf("main(): spreadsheet store enabled (tab %q)", cfg.SheetTab)
	} else {
		log.Println("main(): SHEETS_SPREADSHEET_ID not set, spreadsheet store disabled")
	}

	var sink notify.Sink = notify.Disabled{}
	if cfg.MailEnabled() {
		sink = notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.NotifyRecipient)
		log.Printf("main(): email notifications enabled for %s", cfg.NotifyRecipient)
	} else {
		log.Println("main(): SMTP_HOST or NOTIFY_RECIPIENT not set, email notifications disabled")
	}

	broadcaster := feed.NewBroadcaster()
	archive := storage.SubmissionArchive{}

	submissionHandler := handler.NewSubmissionHandler(store, sink, archive, broadcaster)
	adminHandler := handler.NewAdminHandler(archive)
	feedHandler := handler.NewFeedHandler(broadcaster)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Admin-Key")
	router.Use(cors.New(corsConfig))

	router.Static("/static", "./web/static")
	router.StaticFile("/", "./web/static/index.html")
	router.GET("/healthz", handler.Healthz)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/submit", middleware.SubmitRateLimiter(), submissionHandler.HandleSubmit)

	protected := router.Group("/api").Use(middleware.AdminKeyMiddleware(cfg.AdminKey))
	{
		protected.GET("/submissions", adminHandler.ListSubmissions)
	}

	router.GET("/ws/submissions", middleware.AdminKeyMiddleware(cfg.AdminKey), feedHandler.HandleSubmissionFeed)

	log.Fatal(router.Run(cfg.ListenAddr))
}
