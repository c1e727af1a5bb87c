package usecase

// RunReport summarizes one sync job run for logging and the job trigger
// response.
type RunReport struct {
	Fetched int   `json:"fetched"`
	Written int64 `json:"written"`
	Skipped int   `json:"skipped"`
	// Windows counts the fetch iterations performed (time windows or
	// consultants, depending on the job).
	Windows int `json:"windows"`
}

func (r *RunReport) merge(other RunReport) {
	r.Fetched += other.Fetched
	r.Written += other.Written
	r.Skipped += other.Skipped
	r.Windows += other.Windows
}
