package models

import "time"

// A single answered question from the landing form.
type Field struct {
	Label string `json:"label" example:"Email"`
	Value string `json:"value" example:"john@example.com"`
}

// Submission is one form's worth of ordered label/value data
// captured at submit time. Order follows the form's display order.
type Submission struct {
	ID         string    `json:"id" example:"7f6c9a52-3d1e-44b1-9c0f-2a8f1f1f8f10"`
	ReceivedAt time.Time `json:"received_at"`
	Fields     []Field   `json:"fields"`
	ClientIP   string    `json:"client_ip,omitempty" example:"203.0.113.7"`
}

// Labels returns the field labels in submission order.
func (s Submission) Labels() []string {
	labels := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		labels[i] = f.Label
	}
	return labels
}

// Values returns the field values in submission order.
func (s Submission) Values() []string {
	values := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		values[i] = f.Value
	}
	return values
}

// HeaderRow is the spreadsheet header for this submission:
// "Timestamp" followed by the labels in submission order.
func (s Submission) HeaderRow() []string {
	return append([]string{"Timestamp"}, s.Labels()...)
}

// DataRow is the spreadsheet row for this submission: the receive
// timestamp (RFC 3339) followed by the values in submission order.
func (s Submission) DataRow() []string {
	return append([]string{s.ReceivedAt.Format(time.RFC3339)}, s.Values()...)
}
