/**
* Name: 			parser.go
* Description: 		Request body parsing and ordered record assembly
* Workflow: 		parse fields -> extract order hint -> build submission
 */
package submission

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"FormRelay_LandingProject/internal/models"
)

// OrderHintField carries the form's display-order labels, joined by
// OrderHintSeparator. It is metadata only and never appears in output.
const (
	OrderHintField     = "_field_order"
	OrderHintSeparator = "|||"
)

// ParseFields flattens one request into a field name -> value mapping.
// Three body forms are tried in priority order:
//  1. JSON body when the content type indicates JSON (a broken JSON
//     body yields an empty mapping, not an error),
//  2. pre-parsed URL query parameters, first value per key,
//  3. the raw body treated as a query string, manually decoded, where
//     repeated keys accumulate into a list value.
func ParseFields(contentType string, body []byte, query url.Values) map[string]any {
	if strings.Contains(strings.ToLower(contentType), "application/json") {
		fields := map[string]any{}
		if err := json.Unmarshal(body, &fields); err != nil {
			return map[string]any{}
		}
		return fields
	}

	if len(query) > 0 {
		fields := make(map[string]any, len(query))
		for key, values := range query {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
		return fields
	}

	return parseRawQueryString(string(body))
}

// parseRawQueryString decodes a raw urlencoded body by hand: pairs are
// split on "&", "+" becomes a space, percent escapes are decoded, and a
// key seen more than once collects its values into a []string.
func parseRawQueryString(raw string) map[string]any {
	fields := map[string]any{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = decodeComponent(key)
		value = decodeComponent(value)
		if key == "" {
			continue
		}

		switch existing := fields[key].(type) {
		case nil:
			fields[key] = value
		case string:
			fields[key] = []string{existing, value}
		case []string:
			fields[key] = append(existing, value)
		}
	}
	return fields
}

func decodeComponent(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		// keep the raw text rather than dropping the field
		return strings.ReplaceAll(s, "+", " ")
	}
	return decoded
}

// ExtractOrder pulls the order hint out of the mapping. Labels are
// split on the separator, trimmed, and empty entries dropped; the hint
// field itself is removed from the mapping. Without a hint the keys are
// returned in sorted order, which is not guaranteed to match the form's
// display order.
func ExtractOrder(fields map[string]any) []string {
	if hint, ok := fields[OrderHintField]; ok {
		delete(fields, OrderHintField)
		var labels []string
		for _, label := range strings.Split(Normalize(hint), OrderHintSeparator) {
			label = strings.TrimSpace(label)
			if label != "" {
				labels = append(labels, label)
			}
		}
		return labels
	}

	labels := make([]string, 0, len(fields))
	for key := range fields {
		labels = append(labels, key)
	}
	sort.Strings(labels)
	return labels
}

// Normalize renders any parsed value as a single string: nil becomes
// empty, list values join with ", ", everything else converts with its
// default formatting.
func Normalize(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = Normalize(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// Build assembles the ordered submission record from a parsed mapping.
// Labels missing from the mapping get an empty value at their position,
// never an omitted column.
func Build(fields map[string]any, receivedAt time.Time) models.Submission {
	labels := ExtractOrder(fields)
	record := models.Submission{
		ReceivedAt: receivedAt,
		Fields:     make([]models.Field, len(labels)),
	}
	for i, label := range labels {
		record.Fields[i] = models.Field{Label: label, Value: Normalize(fields[label])}
	}
	return record
}
