package models

// Student represents a tutoring client.
type Student struct {
	// ID is the unique identifier for the student (UUID format).
	ID string `json:"id"`

	// Name is the display name. Entries keep their own copy of it.
	Name string `json:"name"`

	// ClassesBought is the size of the current class package.
	// Zero means the package is not tracked (pay per session).
	ClassesBought int `json:"classesBought"`

	// ClassesRemaining is the unused part of the package. It is stored
	// independently of ClassesBought and never drops below zero.
	ClassesRemaining int `json:"classesRemaining"`

	// HourlyPrice is the current rate charged per hour.
	HourlyPrice float64 `json:"hourlyPrice"`
}

// ClassesUsed returns how many classes of the current package were consumed.
func (s Student) ClassesUsed() int {
	if used := s.ClassesBought - s.ClassesRemaining; used > 0 {
		return used
	}
	return 0
}

// StudentInput carries the editable fields of a student.
type StudentInput struct {
	Name          string  `json:"name" validate:"required"`
	ClassesBought int     `json:"classesBought" validate:"gte=0"`
	HourlyPrice   float64 `json:"hourlyPrice" validate:"gt=0,lte=1000000"`
}
