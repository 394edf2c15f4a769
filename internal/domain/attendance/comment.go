package attendance

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CommentPayload is the structured bundle stored in the attendances
// comment column at the storage boundary: the location segments, the
// free-text note and the application object travel as one opaque blob.
// Only the postgresql repository encodes/decodes it; the rest of the
// engine works with the typed fields on Attendance.
type CommentPayload struct {
	Segments    []WorkSegment `json:"segments,omitempty"`
	Text        string        `json:"text,omitempty"`
	Application *Application  `json:"application,omitempty"`
}

// EncodeComment serializes the record's segments, note and application
// into the comment blob. An entirely empty payload encodes as "".
func EncodeComment(a *Attendance) (string, error) {
	payload := CommentPayload{
		Segments:    a.Segments,
		Text:        a.Note,
		Application: a.Application,
	}
	if len(payload.Segments) == 0 && payload.Text == "" && payload.Application == nil {
		return "", nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode comment payload: %w", err)
	}
	return string(raw), nil
}

// DecodeComment parses the comment blob back onto the record. An empty
// or blank comment yields an empty payload, not an error.
func DecodeComment(a *Attendance, comment string) error {
	a.Segments = nil
	a.Note = ""
	a.Application = nil

	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil
	}

	var payload CommentPayload
	if err := json.Unmarshal([]byte(comment), &payload); err != nil {
		return fmt.Errorf("failed to decode comment payload: %w", err)
	}

	a.Segments = payload.Segments
	a.Note = payload.Text
	a.Application = payload.Application
	return nil
}
