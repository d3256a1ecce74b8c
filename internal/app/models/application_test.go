package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusProgress(t *testing.T) {
	tests := []struct {
		status   ApplicationStatus
		expected int
	}{
		{ApplicationApplied, 25},
		{ApplicationUnderReview, 50},
		{ApplicationInterview, 75},
		{ApplicationAccepted, 90},
		{ApplicationRejected, 0},
		{ApplicationCompleted, 100},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Progress())
		})
	}
}

func TestApplicationStatusValid(t *testing.T) {
	assert.True(t, ApplicationApplied.Valid())
	assert.True(t, ApplicationRejected.Valid())
	assert.False(t, ApplicationStatus("WAITLISTED").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestStudentFullName(t *testing.T) {
	last := "Kumar"
	s := &Student{FirstName: "Asha", LastName: &last}
	assert.Equal(t, "Asha Kumar", s.FullName())

	noLast := &Student{FirstName: "Asha"}
	assert.Equal(t, "Asha", noLast.FullName())
}
