package healthcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"smartCampusReco/domain"
)

// SampleUserID is the ObjectID used to smoke-test the recommendation route.
const SampleUserID = "507f1f77bcf86cd799439011"

type Report struct {
	Health          domain.HealthStatus
	Connected       bool
	RecommendTested bool
	FoodsCount      int
	ParkingCount    int
	Algorithm       string
	RecommendErr    error
}

type Checker struct {
	baseURL string
	client  *http.Client
}

func NewChecker(baseURL string, client *http.Client) *Checker {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Checker{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Run queries /health and, when the store is connected, one sample
// recommendation. An error means the service itself could not be reached.
func (c *Checker) Run(ctx context.Context) (Report, error) {
	var report Report

	hctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.getJSON(hctx, "/health", &report.Health); err != nil {
		return report, fmt.Errorf("cannot reach recommendation service: %w", err)
	}

	report.Connected = report.Health.MongoDB == domain.StoreConnected
	if !report.Connected {
		return report, nil
	}

	var resp domain.RecommendationResponse
	report.RecommendTested = true
	if err := c.getJSON(ctx, "/recommendations/"+SampleUserID, &resp); err != nil {
		report.RecommendErr = err
		return report, nil
	}

	report.FoodsCount = len(resp.Foods)
	report.ParkingCount = len(resp.Parking)
	report.Algorithm = resp.Algorithm
	return report, nil
}

func (c *Checker) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d: %s", path, res.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.Unmarshal(body, out)
}

// Print writes a human readable summary of the report.
func (r Report) Print(w io.Writer) {
	fmt.Fprintln(w, "Recommendation service health check:")
	fmt.Fprintf(w, "   Status: %s\n", r.Health.Status)
	fmt.Fprintf(w, "   MongoDB: %s\n", r.Health.MongoDB)
	fmt.Fprintf(w, "   Real-time updates: %t\n", r.Health.RealTimeUpdates)

	if !r.Connected {
		fmt.Fprintln(w, "WARNING: service is using mock data; set MONGO_URI and restart it")
		return
	}

	fmt.Fprintln(w, "OK: service is connected to the store")
	if r.RecommendErr != nil {
		fmt.Fprintf(w, "ERROR: recommendation test failed: %v\n", r.RecommendErr)
		return
	}
	fmt.Fprintf(w, "   Foods: %d recommendations\n", r.FoodsCount)
	fmt.Fprintf(w, "   Parking: %d recommendations\n", r.ParkingCount)
	fmt.Fprintf(w, "   Algorithm: %s\n", r.Algorithm)
}
