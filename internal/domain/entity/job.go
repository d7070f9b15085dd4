package entity

import "time"

// Job represents a babysitting job posted by a parent.
// Jobs are immutable and permanent: once created they are never edited or
// removed, only listed.
type Job struct {
	ID          int64     // Monotonic, store-assigned identifier.
	Title       string    // Short headline shown in listings.
	Description string    // Free-form description of the job.
	PosterID    int64     // References the User that posted the job.
	CreatedAt   time.Time // Set by the store at creation time.
}
