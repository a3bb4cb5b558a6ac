package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"career-compass/internal/models"
)

const jobSearchPath = "/search"

// JobSearchService queries the job-search provider with a niche title as a
// keyword filter. Zero matches is a valid empty result, not an error. The
// provider exposes no pagination contract here; the full result set is
// returned and page-windowing is left to the consumer.
type JobSearchService interface {
	SearchJobs(ctx context.Context, keyword string) ([]models.JobListing, error)
}

type reedJobService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *JobCache
}

// NewJobSearchService builds a client for the Reed job board API. The cache
// is optional; pass nil to query the provider on every call.
func NewJobSearchService(baseURL, apiKey string, timeout time.Duration, cache *JobCache) JobSearchService {
	return &reedJobService{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
	}
}

// reedJob mirrors the provider's native field names.
type reedJob struct {
	JobID          int64    `json:"jobId"`
	EmployerName   string   `json:"employerName"`
	JobTitle       string   `json:"jobTitle"`
	LocationName   string   `json:"locationName"`
	MinimumSalary  *float64 `json:"minimumSalary"`
	MaximumSalary  *float64 `json:"maximumSalary"`
	Currency       string   `json:"currency"`
	Date           string   `json:"date"`
	ExpirationDate string   `json:"expirationDate"`
	JobDescription string   `json:"jobDescription"`
	JobURL         string   `json:"jobUrl"`
}

type reedSearchResponse struct {
	Results []reedJob `json:"results"`
}

// SearchJobs implements JobSearchService.
func (r *reedJobService) SearchJobs(ctx context.Context, keyword string) ([]models.JobListing, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, NewValidationError("search keyword must not be empty")
	}

	if listings, ok := r.cache.Get(ctx, keyword); ok {
		return listings, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+jobSearchPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build job search request: %w", err)
	}

	q := url.Values{}
	q.Set("keywords", keyword)
	req.URL.RawQuery = q.Encode()

	// Reed authenticates with the API key as Basic auth username and an
	// empty password.
	req.SetBasicAuth(r.apiKey, "")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Service: "job search", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read job search response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{
			Service:    "job search",
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var search reedSearchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, &DecodeError{Service: "job search", Message: err.Error()}
	}

	listings := make([]models.JobListing, 0, len(search.Results))
	for _, job := range search.Results {
		listings = append(listings, models.JobListing{
			ID:            strconv.FormatInt(job.JobID, 10),
			Title:         job.JobTitle,
			Location:      job.LocationName,
			MinimumSalary: job.MinimumSalary,
			MaximumSalary: job.MaximumSalary,
			Currency:      job.Currency,
			Employer:      job.EmployerName,
			Description:   job.JobDescription,
			PostedDate:    job.Date,
			ExpiryDate:    job.ExpirationDate,
			ApplyURL:      job.JobURL,
		})
	}

	r.cache.Set(ctx, keyword, listings)

	return listings, nil
}
