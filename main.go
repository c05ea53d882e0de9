package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/harshithgangone/Accredian-Backend-task/handlers/referrals"
	"github.com/harshithgangone/Accredian-Backend-task/mailer"
	"github.com/harshithgangone/Accredian-Backend-task/migrations"
	"github.com/harshithgangone/Accredian-Backend-task/store"
	"github.com/harshithgangone/Accredian-Backend-task/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

// fallbackHandler turns a panic anywhere in the request chain into the
// generic 500 response. The underlying detail is only exposed outside
// production.
func fallbackHandler(c *gin.Context, recovered interface{}) {
	body := gin.H{
		"success": false,
		"message": "Something went wrong on the server.",
	}
	if os.Getenv("APP_ENV") != "production" {
		body["error"] = fmt.Sprint(recovered)
	}
	c.JSON(http.StatusInternalServerError, body)
}

func smtpPort() int {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return 587
	}
	return port
}

func main() {
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(fallbackHandler))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	db, err := utils.ConnectDatabase()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := migrations.MigrateReferrals(db); err != nil {
		log.Fatalf("Failed to migrate referral model: %v", err)
	}

	referralStore := store.New(db)
	referralMailer := mailer.New(mailer.Config{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       smtpPort(),
		User:       os.Getenv("EMAIL_USER"),
		Pass:       os.Getenv("EMAIL_PASS"),
		WebsiteURL: os.Getenv("WEBSITE_URL"),
	})

	handler := referrals.NewHandler(referralStore, referralMailer)
	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Printf("Server running on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
