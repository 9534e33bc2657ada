package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestDriveStatusValidate(t *testing.T) {
	for _, s := range []TestDriveStatus{
		TestDriveStatusPending,
		TestDriveStatusConfirmed,
		TestDriveStatusCompleted,
		TestDriveStatusCancelled,
	} {
		assert.True(t, s.Validate(), "expected %q to be valid", s)
	}

	assert.False(t, TestDriveStatus("").Validate())
	assert.False(t, TestDriveStatus("parked").Validate())
	assert.False(t, TestDriveStatus("Pending").Validate())
}

func TestFAQQuestionStatusValidate(t *testing.T) {
	for _, s := range []FAQQuestionStatus{
		FAQQuestionStatusPending,
		FAQQuestionStatusAnswered,
		FAQQuestionStatusArchived,
	} {
		assert.True(t, s.Validate(), "expected %q to be valid", s)
	}

	assert.False(t, FAQQuestionStatus("").Validate())
	assert.False(t, FAQQuestionStatus("closed").Validate())
}

func TestCustomSearchStatusValidate(t *testing.T) {
	for _, s := range []CustomSearchStatus{
		CustomSearchStatusPending,
		CustomSearchStatusInProgress,
		CustomSearchStatusCompleted,
	} {
		assert.True(t, s.Validate(), "expected %q to be valid", s)
	}

	assert.False(t, CustomSearchStatus("").Validate())
	assert.False(t, CustomSearchStatus("done").Validate())
}
