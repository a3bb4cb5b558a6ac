package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const predictPath = "/predict-role"

// RoleClassifier calls the external role-classification service with a
// feature vector. The call is billed and rate-limited upstream, so a failed
// request is never retried here; retry policy belongs to the orchestrator.
type RoleClassifier interface {
	PredictRole(ctx context.Context, features []float64) (string, error)
}

type roleClassifier struct {
	baseURL    string
	httpClient *http.Client
}

func NewRoleClassifier(baseURL string, timeout time.Duration) RoleClassifier {
	return &roleClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	PredictedRole string `json:"predicted_role"`
}

// PredictRole implements RoleClassifier.
func (r *roleClassifier) PredictRole(ctx context.Context, features []float64) (string, error) {
	if len(features) != FeatureVectorLen {
		return "", NewValidationError("feature vector must contain exactly %d values, got %d", FeatureVectorLen, len(features))
	}

	payload, err := json.Marshal(predictRequest{Features: features})
	if err != nil {
		return "", fmt.Errorf("failed to marshal feature vector: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+predictPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Service: "classifier", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read prediction response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &UpstreamError{
			Service:    "classifier",
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var prediction predictResponse
	if err := json.Unmarshal(body, &prediction); err != nil {
		return "", &DecodeError{Service: "classifier", Message: err.Error()}
	}

	if strings.TrimSpace(prediction.PredictedRole) == "" {
		return "", &DecodeError{Service: "classifier", Message: "response is missing the predicted_role field"}
	}

	return prediction.PredictedRole, nil
}
