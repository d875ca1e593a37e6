package models

import "time"

// Subject is a unit of a course. Rows written outside this API may leave any column
// but id empty.
type Subject struct {
	ID        string     `db:"id" json:"id"`
	CourseID  *string    `db:"course_id" json:"course_id"`
	Name      *string    `db:"name" json:"name"`
	CreatedAt *time.Time `db:"created_at" json:"created_at"`
}

// SubjectFilter narrows subject listings. An empty CourseID lists every subject.
type SubjectFilter struct {
	CourseID string
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// StringValue dereferences an optional column, returning "" for NULL.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
