package entity

import "time"

// Application represents a babysitter applying to a job. There is no
// uniqueness constraint on (JobID, ApplicantID): the same user may apply to
// the same job any number of times.
type Application struct {
	ID          int64     // Monotonic, store-assigned identifier.
	JobID       int64     // References the Job being applied to.
	ApplicantID int64     // References the User that applied.
	Message     string    // Free-form message to the poster.
	AppliedAt   time.Time // Set by the store at creation time.
}
