package models

// User is a row of the users table as managed from the admin panel. The table carries
// no NOT NULL constraints, so every text column may come back empty.
type User struct {
	ID       string  `db:"id" json:"id"`
	Name     *string `db:"name" json:"name"`
	Email    *string `db:"email" json:"email"`
	Phone    *string `db:"phone" json:"phone"`
	Role     *string `db:"role" json:"role"`
	Approved Flag    `db:"approved" json:"approved"`
}

// BoolToInt coerces a flag into the 0/1 form stored by the database.
func BoolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
