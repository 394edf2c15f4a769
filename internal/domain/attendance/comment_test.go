package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRoundTrip(t *testing.T) {
	rec := &Attendance{
		Segments: []WorkSegment{{Location: "warehouse-a", Department: "picking", Hours: 4.5}},
		Note:     "covered for B shift",
		Application: &Application{
			Status:      StatusPending,
			AppliedIn:   "09:00",
			AppliedOut:  "17:00",
			Reason:      ReasonNoDeviation,
			AutoApplied: true,
		},
	}

	blob, err := EncodeComment(rec)
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	var decoded Attendance
	require.NoError(t, DecodeComment(&decoded, blob))

	assert.Equal(t, rec.Segments, decoded.Segments)
	assert.Equal(t, rec.Note, decoded.Note)
	assert.Equal(t, rec.Application, decoded.Application)
}

func TestCommentEmptyPayload(t *testing.T) {
	blob, err := EncodeComment(&Attendance{})
	require.NoError(t, err)
	assert.Empty(t, blob)
}

func TestDecodeCommentBlank(t *testing.T) {
	rec := &Attendance{Note: "stale"}
	require.NoError(t, DecodeComment(rec, "   "))

	assert.Empty(t, rec.Note)
	assert.Nil(t, rec.Segments)
	assert.Nil(t, rec.Application)
}

func TestDecodeCommentMalformed(t *testing.T) {
	var rec Attendance
	assert.Error(t, DecodeComment(&rec, "{not json"))
}
