package submission

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func TestRoundTripURLEncoded(t *testing.T) {
	body := "Name=John+Doe&Email=john%40example.com&_field_order=Name|||Email"
	fields := ParseFields("application/x-www-form-urlencoded", []byte(body), nil)

	record := Build(fields, testTime)

	assert.Equal(t, []string{"Timestamp", "Name", "Email"}, record.HeaderRow())
	assert.Equal(t, []string{"2026-03-14T09:26:53Z", "John Doe", "john@example.com"}, record.DataRow())
}

func TestOrderHintDirectsHeaderOrder(t *testing.T) {
	fields := map[string]any{
		"Email":        "a@b.c",
		"Name":         "Ana",
		"Message":      "hi",
		OrderHintField: "Message||| Name |||Email",
	}

	record := Build(fields, testTime)

	assert.Equal(t, []string{"Timestamp", "Message", "Name", "Email"}, record.HeaderRow())
	assert.Equal(t, []string{"hi", "Ana", "a@b.c"}, record.Values())
}

func TestOrderHintNeverAppearsInOutput(t *testing.T) {
	fields := map[string]any{
		"Name":         "Ana",
		OrderHintField: "Name",
	}

	record := Build(fields, testTime)

	assert.NotContains(t, record.HeaderRow(), OrderHintField)
	for _, field := range record.Fields {
		assert.NotEqual(t, OrderHintField, field.Label)
	}
}

func TestOrderHintSkipsEmptyLabels(t *testing.T) {
	fields := map[string]any{
		"A":            "1",
		"B":            "2",
		OrderHintField: "A|||   |||B||||||",
	}

	record := Build(fields, testTime)

	assert.Equal(t, []string{"Timestamp", "A", "B"}, record.HeaderRow())
}

func TestMissingFieldYieldsEmptyString(t *testing.T) {
	fields := map[string]any{
		"Name":         "Ana",
		OrderHintField: "Name|||Phone|||Email",
	}

	record := Build(fields, testTime)

	require.Len(t, record.Fields, 3)
	assert.Equal(t, []string{"Ana", "", ""}, record.Values())
}

func TestRepeatedKeysAccumulateAndJoin(t *testing.T) {
	body := "Interests=Go&Interests=SQL&Interests=Sheets&_field_order=Interests"
	fields := ParseFields("", []byte(body), nil)

	record := Build(fields, testTime)

	assert.Equal(t, []string{"Go, SQL, Sheets"}, record.Values())
}

func TestMalformedJSONDegradesToEmptyRecord(t *testing.T) {
	record := Build(ParseFields("application/json", []byte(`{`), nil), testTime)

	assert.Equal(t, []string{"Timestamp"}, record.HeaderRow())
	assert.Empty(t, record.Fields)
}

func TestJSONBody(t *testing.T) {
	body := `{"Name":"Ana","Age":34,"Newsletter":null,"Tags":["a","b"],"_field_order":"Name|||Age|||Newsletter|||Tags"}`
	fields := ParseFields("application/json; charset=utf-8", []byte(body), nil)

	record := Build(fields, testTime)

	assert.Equal(t, []string{"Timestamp", "Name", "Age", "Newsletter", "Tags"}, record.HeaderRow())
	assert.Equal(t, []string{"Ana", "34", "", "a, b"}, record.Values())
}

func TestQueryParametersTakeFirstValue(t *testing.T) {
	query := url.Values{
		"Name":         {"First", "Second"},
		OrderHintField: {"Name"},
	}
	fields := ParseFields("", nil, query)

	record := Build(fields, testTime)

	assert.Equal(t, []string{"First"}, record.Values())
}

func TestFallbackOrderWithoutHint(t *testing.T) {
	fields := map[string]any{
		"Zeta":  "z",
		"Alpha": "a",
		"Mid":   "m",
	}

	record := Build(fields, testTime)

	// deterministic but not display order: sorted keys
	assert.Equal(t, []string{"Timestamp", "Alpha", "Mid", "Zeta"}, record.HeaderRow())
}

func TestRawParseKeepsUndecodableText(t *testing.T) {
	fields := ParseFields("", []byte("Name=bad%zz+value"), nil)

	assert.Equal(t, "bad%zz value", fields["Name"])
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		in    any
		wants string
	}{
		{"nil", nil, ""},
		{"string", "x", "x"},
		{"string list", []string{"a", "b"}, "a, b"},
		{"mixed list", []any{"a", 2.0, nil}, "a, 2, "},
		{"number", 3.5, "3.5"},
		{"whole number", 3.0, "3"},
		{"bool", true, "true"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wants, Normalize(tc.in))
		})
	}
}
