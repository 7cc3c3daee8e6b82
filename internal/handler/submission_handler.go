/**
* Name: 			submission_handler.go
* Description: 		Gin HTTP handler for the ordered submission receiver
* Workflow: 		parse body -> build ordered record -> persist, archive, notify
 */
package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"FormRelay_LandingProject/internal/feed"
	"FormRelay_LandingProject/internal/notify"
	"FormRelay_LandingProject/internal/sheets"
	"FormRelay_LandingProject/internal/storage"
	"FormRelay_LandingProject/internal/submission"
)

const notifySubject = "New landing page submission"

// JSON status object returned for every submission request.
type StatusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message,omitempty" example:"error description"`
}

// SubmissionHandler wires the receiver to its collaborators. All of
// them are interfaces so tests can swap in fakes.
type SubmissionHandler struct {
	store       sheets.TabularStore
	sink        notify.Sink
	archive     storage.Archive
	broadcaster *feed.Broadcaster
}

func NewSubmissionHandler(store sheets.TabularStore, sink notify.Sink, archive storage.Archive, broadcaster *feed.Broadcaster) *SubmissionHandler {
	return &SubmissionHandler{
		store:       store,
		sink:        sink,
		archive:     archive,
		broadcaster: broadcaster,
	}
}

// HandleSubmit godoc
// @Summary      Submit a form
// @Description  Accepts one landing form submission as JSON or urlencoded fields.
// @Description  The special field `_field_order` carries the display-order labels
// @Description  joined by `|||`; it directs column order and is never persisted.
// @Tags         Form
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200 {object} handler.StatusResponse
// @Failure      429 {object} handler.StatusResponse "Rate limit exceeded"
// @Failure      500 {object} handler.StatusResponse "Persistence or notification failure"
// @Router       /submit [post]
func (h *SubmissionHandler) HandleSubmit(c *gin.Context) {
	rawData, err := c.GetRawData()
	if err != nil {
		respondError(c, err)
		return
	}

	// Parse failures degrade to an empty mapping rather than erroring;
	// only persistence and notification can fail the request.
	fields := submission.ParseFields(c.ContentType(), rawData, c.Request.URL.Query())
	record := submission.Build(fields, time.Now())
	record.ID = uuid.NewString()
	record.ClientIP = c.ClientIP()

	ctx := c.Request.Context()
	header := record.HeaderRow()

	if err := h.store.EnsureColumns(ctx, len(header)); err != nil {
		respondError(c, err)
		return
	}
	// Row 1 always mirrors the latest submission's field set.
	if err := h.store.OverwriteHeader(ctx, header); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.AppendRow(ctx, record.DataRow()); err != nil {
		respondError(c, err)
		return
	}

	if err := h.archive.CreateSubmission(record); err != nil {
		respondError(c, err)
		return
	}

	if err := h.sink.Notify(notifySubject, notify.ComposeBody(record)); err != nil {
		respondError(c, err)
		return
	}

	h.broadcaster.Publish(record)
	log.Printf("HandleSubmit(): accepted submission %s with %d fields from %s", record.ID, len(record.Fields), record.ClientIP)

	c.JSON(http.StatusOK, StatusResponse{Status: "success"})
}

func respondError(c *gin.Context, err error) {
	log.Printf("[ERROR] submission failed: %v", err)
	c.JSON(http.StatusInternalServerError, StatusResponse{Status: "error", Message: err.Error()})
}
