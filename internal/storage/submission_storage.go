package storage

import (
	"encoding/json"
	"time"

	"FormRelay_LandingProject/internal/models"
)

// Archive is the local persistence collaborator for accepted
// submissions. The spreadsheet remains the primary store; this copy
// backs the operator listing.
type Archive interface {
	CreateSubmission(record models.Submission) error
	GetRecentSubmissions(limit int) ([]models.Submission, error)
}

// SubmissionArchive stores submissions in the process-local SQLite
// database opened by InitDB.
type SubmissionArchive struct{}

func (SubmissionArchive) CreateSubmission(record models.Submission) error {
	labels, err := json.Marshal(record.Labels())
	if err != nil {
		return err
	}
	values, err := json.Marshal(record.Values())
	if err != nil {
		return err
	}

	stmt, err := db.Prepare("INSERT INTO submissions(id, received_at, field_labels, field_values, client_ip) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	// stored in UTC so the lexical ORDER BY below is chronological
	_, err = stmt.Exec(record.ID, record.ReceivedAt.UTC().Format(time.RFC3339), string(labels), string(values), record.ClientIP)
	return err
}

func (SubmissionArchive) GetRecentSubmissions(limit int) ([]models.Submission, error) {
	query := `
		SELECT id, received_at, field_labels, field_values, client_ip
		FROM submissions
		ORDER BY received_at DESC
		LIMIT ?
	`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Submission
	for rows.Next() {
		var record models.Submission
		var receivedStr, labelsJSON, valuesJSON string

		if err := rows.Scan(&record.ID, &receivedStr, &labelsJSON, &valuesJSON, &record.ClientIP); err != nil {
			return nil, err
		}

		receivedAt, err := time.Parse(time.RFC3339, receivedStr)
		if err != nil {
			return nil, err
		}
		record.ReceivedAt = receivedAt

		var labels, values []string
		if err := json.Unmarshal([]byte(labelsJSON), &labels); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(valuesJSON), &values); err != nil {
			return nil, err
		}
		record.Fields = make([]models.Field, len(labels))
		for i, label := range labels {
			value := ""
			if i < len(values) {
				value = values[i]
			}
			record.Fields[i] = models.Field{Label: label, Value: value}
		}

		records = append(records, record)
	}
	return records, rows.Err()
}
