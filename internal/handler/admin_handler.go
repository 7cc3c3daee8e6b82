package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"FormRelay_LandingProject/internal/models"
	"FormRelay_LandingProject/internal/storage"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Archived submission listing (wrapper)
type SubmissionListResponse struct {
	Submissions []models.Submission `json:"submissions"`
}

type AdminHandler struct {
	archive storage.Archive
}

func NewAdminHandler(archive storage.Archive) *AdminHandler {
	return &AdminHandler{archive: archive}
}

// ListSubmissions godoc
// @Summary      List archived submissions
// @Description  Returns recently received submissions, newest first.
// @Tags         Admin
// @Produce      json
// @Param        limit query int false "Maximum entries to return (default 50, max 200)"
// @Param        X-Admin-Key header string true "Operator key"
// @Success      200 {object} handler.SubmissionListResponse
// @Failure      403 {object} map[string]string "Invalid admin key"
// @Failure      500 {object} map[string]string "Database error"
// @Router       /api/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = min(parsed, maxListLimit)
	}

	records, err := h.archive.GetRecentSubmissions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}
	if records == nil {
		records = []models.Submission{}
	}
	c.JSON(http.StatusOK, SubmissionListResponse{Submissions: records})
}

// Healthz godoc
// @Summary      Liveness probe
// @Tags         Admin
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /healthz [get]
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
