// Package benchmark drives concurrent load against the page routes and
// summarizes latency and status codes.
package benchmark

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// APIBenchmark fires Requests requests with at most Concurrency in flight
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	Session     *http.Cookie
	Client      *http.Client
}

// BenchmarkResult summarizes one run
type BenchmarkResult struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	MinTime        time.Duration `json:"min_time"`
	MaxTime        time.Duration `json:"max_time"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
}

// RequestResult is the outcome of one request
type RequestResult struct {
	Duration   time.Duration
	StatusCode int
	Error      error
}

// NewAPIBenchmark creates a benchmark. Redirects are not followed so a
// guard redirect shows up as a 302 rather than the login page.
func NewAPIBenchmark(baseURL string, concurrency, requests int, session *http.Cookie) *APIBenchmark {
	return &APIBenchmark{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		Session:     session,
		Client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Login posts credentials and returns the session cookie
func Login(client *http.Client, baseURL, email, password string) (*http.Cookie, error) {
	form := url.Values{"email": {email}, "password": {password}}
	resp, err := client.PostForm(baseURL+"/login", form)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		return nil, fmt.Errorf("login answered %d", resp.StatusCode)
	}
	for _, c := range resp.Cookies() {
		if c.Value != "" && c.Name != "flash" {
			return c, nil
		}
	}
	return nil, fmt.Errorf("login set no session cookie")
}

// RunGET benchmarks a GET of path
func (b *APIBenchmark) RunGET(path string) *BenchmarkResult {
	return b.runTest(http.MethodGet, b.BaseURL+path, func(int) string { return "" })
}

// RunPOSTForm benchmarks form posts to path. form builds the body of the i-th request.
func (b *APIBenchmark) RunPOSTForm(path string, form func(i int) url.Values) *BenchmarkResult {
	return b.runTest(http.MethodPost, b.BaseURL+path, func(i int) string { return form(i).Encode() })
}

func (b *APIBenchmark) runTest(method, url string, body func(i int) string) *BenchmarkResult {
	results := make(chan RequestResult, b.Requests)
	var wg sync.WaitGroup
	limiter := make(chan struct{}, b.Concurrency)

	startTime := time.Now()

	for i := 0; i < b.Requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()

			start := time.Now()
			req, err := http.NewRequest(method, url, strings.NewReader(body(i)))
			if err != nil {
				results <- RequestResult{Error: err}
				return
			}
			if method == http.MethodPost {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			if b.Session != nil {
				req.AddCookie(b.Session)
			}

			resp, err := b.Client.Do(req)
			if err != nil {
				results <- RequestResult{Error: err}
				return
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			results <- RequestResult{
				Duration:   time.Since(start),
				StatusCode: resp.StatusCode,
			}
		}(i)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var minTime time.Duration = 1<<63 - 1
	var maxTime time.Duration
	var totalTime time.Duration
	successCount := 0
	failureCount := 0
	statusCodes := make(map[int]int)
	var errors []string

	for result := range results {
		if result.Error != nil {
			failureCount++
			errors = append(errors, result.Error.Error())
			continue
		}

		totalTime += result.Duration
		if result.Duration < minTime {
			minTime = result.Duration
		}
		if result.Duration > maxTime {
			maxTime = result.Duration
		}

		statusCodes[result.StatusCode]++
		// form posts answer with a redirect
		if result.StatusCode >= 200 && result.StatusCode < 400 {
			successCount++
		} else {
			failureCount++
		}
	}

	totalElapsed := time.Since(startTime)
	averageTime := time.Duration(0)
	if successCount+failureCount > 0 {
		averageTime = totalTime / time.Duration(successCount+failureCount)
	}

	return &BenchmarkResult{
		URL:            url,
		Method:         method,
		Concurrency:    b.Concurrency,
		TotalRequests:  b.Requests,
		SuccessCount:   successCount,
		FailureCount:   failureCount,
		TotalTime:      totalElapsed,
		AverageTime:    averageTime,
		MinTime:        minTime,
		MaxTime:        maxTime,
		RequestsPerSec: float64(b.Requests) / totalElapsed.Seconds(),
		StatusCodes:    statusCodes,
		Errors:         errors,
	}
}

// PrintResult writes a human readable summary to stdout
func (r *BenchmarkResult) PrintResult() {
	fmt.Printf("benchmark %s %s\n", r.Method, r.URL)
	fmt.Printf("  concurrency:  %d\n", r.Concurrency)
	fmt.Printf("  requests:     %d (ok %d, failed %d)\n", r.TotalRequests, r.SuccessCount, r.FailureCount)
	fmt.Printf("  total time:   %s\n", r.TotalTime)
	fmt.Printf("  latency:      avg %s, min %s, max %s\n", r.AverageTime, r.MinTime, r.MaxTime)
	fmt.Printf("  throughput:   %.2f req/s\n", r.RequestsPerSec)
	for code, count := range r.StatusCodes {
		fmt.Printf("  status %d: %d\n", code, count)
	}
	for i, err := range r.Errors {
		if i >= 5 {
			fmt.Printf("  ... %d more errors\n", len(r.Errors)-5)
			break
		}
		fmt.Printf("  error: %s\n", err)
	}
}
