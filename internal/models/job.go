package models

// JobListing is the internal shape of a job posting, mapped 1:1 from the
// job-search provider's native field names.
type JobListing struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Location      string   `json:"location"`
	MinimumSalary *float64 `json:"minimum_salary,omitempty"`
	MaximumSalary *float64 `json:"maximum_salary,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	Employer      string   `json:"employer"`
	Description   string   `json:"description"`
	PostedDate    string   `json:"posted_date"`
	ExpiryDate    string   `json:"expiry_date"`
	ApplyURL      string   `json:"apply_url"`
}
