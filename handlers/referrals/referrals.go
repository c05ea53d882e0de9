package referrals

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshithgangone/Accredian-Backend-task/models"
	"github.com/harshithgangone/Accredian-Backend-task/validation"
)

const genericSubmitError = "An error occurred while processing your referral. Please try again later."

// ReferralStore is the persistence surface the handlers need.
type ReferralStore interface {
	Create(referral *models.Referral) error
	ListAll() ([]models.Referral, error)
}

// Notifier sends the two referral emails.
type Notifier interface {
	SendReferralEmails(referral models.Referral) error
}

type Handler struct {
	store    ReferralStore
	notifier Notifier
}

func NewHandler(store ReferralStore, notifier Notifier) *Handler {
	return &Handler{store: store, notifier: notifier}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/referrals", h.SubmitReferral)
	r.GET("/api/referrals", h.GetReferrals)
}

func (h *Handler) SubmitReferral(c *gin.Context) {
	var submission validation.Submission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request payload",
		})
		return
	}

	if errs := validation.Validate(submission); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  errs,
		})
		return
	}

	referral := models.Referral{
		ReferrerName:  submission.YourName,
		ReferrerEmail: submission.YourEmail,
		ReferrerPhone: submission.YourPhone,
		FriendName:    submission.FriendName,
		FriendEmail:   submission.FriendEmail,
		FriendPhone:   submission.FriendPhone,
		Program:       submission.Program,
	}

	if err := h.store.Create(&referral); err != nil {
		log.Printf("Error submitting referral: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": genericSubmitError,
		})
		return
	}

	// The referral stays persisted even if notification fails; the emails
	// are a best-effort, at-most-once attempt.
	if err := h.notifier.SendReferralEmails(referral); err != nil {
		log.Printf("Error sending referral emails: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": genericSubmitError,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Referral submitted successfully",
		"referralId": referral.ID,
	})
}

func (h *Handler) GetReferrals(c *gin.Context) {
	referrals, err := h.store.ListAll()
	if err != nil {
		log.Printf("Error fetching referrals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "An error occurred while fetching referrals.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    referrals,
	})
}
