package models

// EnrollmentDetail is an enrollment row joined with its course name.
type EnrollmentDetail struct {
	UserID     string  `db:"user_id" json:"user_id"`
	CourseID   string  `db:"course_id" json:"course_id"`
	CourseName *string `db:"course_name" json:"course_name"`
}
