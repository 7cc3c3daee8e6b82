package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"FormRelay_LandingProject/internal/models"
)

func TestComposeBody(t *testing.T) {
	record := models.Submission{
		ReceivedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Fields: []models.Field{
			{Label: "Name", Value: "John Doe"},
			{Label: "Email", Value: "john@example.com"},
			{Label: "Message", Value: ""},
		},
	}

	body := ComposeBody(record)

	assert.Equal(t,
		"Timestamp: 2026-03-14 09:26:53\n"+
			"Name: John Doe\n"+
			"Email: john@example.com\n"+
			"Message: \n",
		body)
}

func TestDisabledSinkIsNoOp(t *testing.T) {
	assert.NoError(t, Disabled{}.Notify("subject", "body"))
}
