// README: Bench checks for the ecofly API: environment, schema, endpoint contracts and throughput.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	statusPass = "PASS"
	statusFail = "FAIL"
	statusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Status  string
	Latency time.Duration
	Note    string
}

type Check struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	checks := r.checks()
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		res := c.Run(ctx, r)
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, c.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}
	return results
}

func summarize(results []Result) map[string]int {
	counts := map[string]int{}
	for _, res := range results {
		counts[res.Status]++
	}
	return counts
}

func (r *Runner) checks() []Check {
	base := r.cfg.BaseURL
	estimateBody := map[string]any{
		"from":       map[string]string{"iata": "KTM"},
		"to":         map[string]string{"iata": "LHR"},
		"airline_id": "QR",
	}

	return []Check{
		{Name: "Env: Postgres connect", Run: pingDB},
		{Name: "Env: Redis connect", Run: pingRedis},
		{Name: "Migration: apply (optional)", Run: applyMigration},
		{Name: "Migration: tables exist", Run: tablesExist},

		httpCheck("API: health", http.MethodGet, base+"/health", nil, http.StatusOK),
		httpCheck("API: airlines", http.MethodGet, base+"/api/airlines", nil, http.StatusOK),
		httpCheck("API: airport by code", http.MethodGet, base+"/api/airports/KTM", nil, http.StatusOK),
		httpCheck("API: unknown airport -> 404", http.MethodGet, base+"/api/airports/QQQ", nil, http.StatusNotFound),
		httpCheck("API: short query -> empty list", http.MethodGet, base+"/api/airports?q=k", nil, http.StatusOK),
		httpCheck("API: estimate KTM-LHR", http.MethodPost, base+"/api/estimates", estimateBody, http.StatusOK),
		httpCheck("API: estimate bad latitude -> 400", http.MethodPost, base+"/api/estimates", map[string]any{
			"from":       map[string]string{"iata": "KTM"},
			"to":         map[string]any{"iata": "BAD", "name": "x", "city": "x", "country": "x", "lat": 123.0, "lon": 456.0},
			"airline_id": "QR",
		}, http.StatusBadRequest),
		httpCheck("API: unknown airline -> 400", http.MethodPost, base+"/api/estimates", map[string]any{
			"from":       map[string]string{"iata": "KTM"},
			"to":         map[string]string{"iata": "LHR"},
			"airline_id": "ZZ",
		}, http.StatusBadRequest),
		httpCheck("API: eco tips", http.MethodGet, base+"/api/eco-tips?distance_km=1000", nil, http.StatusOK),
		httpCheck("API: recent estimates", http.MethodGet, base+"/api/estimates/recent?limit=5", nil, http.StatusOK, http.StatusServiceUnavailable),

		{
			Name: "Concurrency: identical airport queries",
			Run: func(ctx context.Context, r *Runner) Result {
				return concurrentSuggest(ctx, r, base+"/api/airports?q=kathmandu")
			},
		},
		{
			Name: "Perf: estimate throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/estimates", estimateBody)
			},
		},
	}
}

func pingDB(ctx context.Context, r *Runner) Result {
	if r.db == nil {
		return Result{Status: statusSkip, Note: "db not configured"}
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.db.Ping(ctx); err != nil {
		return Result{Status: statusFail, Note: err.Error()}
	}
	return Result{Status: statusPass}
}

func pingRedis(ctx context.Context, r *Runner) Result {
	if r.redis == nil {
		return Result{Status: statusSkip, Note: "redis not configured"}
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.redis.Ping(ctx).Err(); err != nil {
		return Result{Status: statusFail, Note: err.Error()}
	}
	return Result{Status: statusPass}
}

func applyMigration(ctx context.Context, r *Runner) Result {
	if !r.cfg.ApplyMigration {
		return Result{Status: statusSkip, Note: "apply-migration=false"}
	}
	if r.db == nil {
		return Result{Status: statusFail, Note: "db not configured"}
	}
	sql, err := os.ReadFile(r.cfg.MigrationPath)
	if err != nil {
		return Result{Status: statusFail, Note: err.Error()}
	}
	for _, s := range splitSQL(string(sql)) {
		if _, err := r.db.Exec(ctx, s); err != nil {
			return Result{Status: statusFail, Note: err.Error()}
		}
	}
	return Result{Status: statusPass}
}

func tablesExist(ctx context.Context, r *Runner) Result {
	if r.db == nil {
		return Result{Status: statusSkip, Note: "db not configured"}
	}
	tables, err := extractTables(r.cfg.MigrationPath)
	if err != nil {
		return Result{Status: statusFail, Note: err.Error()}
	}
	for _, t := range tables {
		var exists bool
		err := r.db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
			t,
		).Scan(&exists)
		if err != nil {
			return Result{Status: statusFail, Note: err.Error()}
		}
		if !exists {
			return Result{Status: statusFail, Note: "missing table: " + t}
		}
	}
	return Result{Status: statusPass, Note: strings.Join(tables, ",")}
}

func httpCheck(name, method, url string, body any, okStatuses ...int) Check {
	return Check{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			start := time.Now()
			status, err := r.do(ctx, method, url, body)
			latency := time.Since(start)
			if err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			note := fmt.Sprintf("status=%d", status)
			if contains(okStatuses, status) {
				return Result{Status: statusPass, Latency: latency, Note: note}
			}
			return Result{Status: statusFail, Latency: latency, Note: note}
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp.StatusCode, nil
}

// concurrentSuggest fires identical lookups at once; every one must answer 200 or 429.
func concurrentSuggest(ctx context.Context, r *Runner, url string) Result {
	var (
		wg      sync.WaitGroup
		ok      atomic.Int64
		limited atomic.Int64
		failed  atomic.Int64
	)
	start := time.Now()
	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := r.do(ctx, http.MethodGet, url, nil)
			switch {
			case err != nil:
				failed.Add(1)
			case status == http.StatusOK:
				ok.Add(1)
			case status == http.StatusTooManyRequests:
				limited.Add(1)
			default:
				failed.Add(1)
			}
		}()
	}
	wg.Wait()

	note := fmt.Sprintf("ok=%d limited=%d failed=%d", ok.Load(), limited.Load(), failed.Load())
	if failed.Load() > 0 {
		return Result{Status: statusFail, Latency: time.Since(start), Note: note}
	}
	return Result{Status: statusPass, Latency: time.Since(start), Note: note}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				status, err := r.do(ctx, http.MethodPost, url, payload)
				if err != nil || status >= 500 {
					errCount.Add(1)
					continue
				}
				count.Add(1)
			}
		}()
	}
	wg.Wait()

	if count.Load() == 0 {
		return Result{Status: statusFail, Note: "no requests completed"}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	return Result{Status: statusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount.Load())}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

var createTableRe = regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	matches := createTableRe.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "--") || l == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	parts := strings.Split(strings.Join(filtered, "\n"), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
