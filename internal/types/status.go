package types

// TestDriveStatus is the lifecycle state of a test drive request.
type TestDriveStatus string

const (
	TestDriveStatusPending   TestDriveStatus = "pending"
	TestDriveStatusConfirmed TestDriveStatus = "confirmed"
	TestDriveStatusCompleted TestDriveStatus = "completed"
	TestDriveStatusCancelled TestDriveStatus = "cancelled"
)

func (s TestDriveStatus) Validate() bool {
	switch s {
	case TestDriveStatusPending, TestDriveStatusConfirmed, TestDriveStatusCompleted, TestDriveStatusCancelled:
		return true
	}
	return false
}

// FAQQuestionStatus is the lifecycle state of a customer submitted question.
type FAQQuestionStatus string

const (
	FAQQuestionStatusPending  FAQQuestionStatus = "pending"
	FAQQuestionStatusAnswered FAQQuestionStatus = "answered"
	FAQQuestionStatusArchived FAQQuestionStatus = "archived"
)

func (s FAQQuestionStatus) Validate() bool {
	switch s {
	case FAQQuestionStatusPending, FAQQuestionStatusAnswered, FAQQuestionStatusArchived:
		return true
	}
	return false
}

// CustomSearchStatus is the lifecycle state of a custom vehicle search request.
type CustomSearchStatus string

const (
	CustomSearchStatusPending    CustomSearchStatus = "pending"
	CustomSearchStatusInProgress CustomSearchStatus = "in_progress"
	CustomSearchStatusCompleted  CustomSearchStatus = "completed"
)

func (s CustomSearchStatus) Validate() bool {
	switch s {
	case CustomSearchStatusPending, CustomSearchStatusInProgress, CustomSearchStatusCompleted:
		return true
	}
	return false
}
