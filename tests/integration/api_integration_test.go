// README: Live API smoke tests. They run only when ECOFLY_API_BASE_URL points at a running server.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func TestEstimateEndpoint(t *testing.T) {
	client, baseURL := setupAPI(t)

	status, body := call(t, client, http.MethodPost, baseURL+"/api/estimates", map[string]any{
		"from":       map[string]string{"iata": "KTM"},
		"to":         map[string]string{"iata": "LHR"},
		"airline_id": "QR",
	})
	if status != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%s", http.StatusOK, status, string(body))
	}

	var resp struct {
		Metrics struct {
			DistanceKm      float64 `json:"distance_km"`
			CO2EmissionsKg  float64 `json:"co2_emissions_kg"`
			DurationMinutes float64 `json:"duration_minutes"`
		} `json:"metrics"`
		Display struct {
			CO2 string `json:"co2"`
		} `json:"display"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response: %v, raw=%s", err, string(body))
	}
	if math.Abs(resp.Metrics.DistanceKm-7350) > 50 {
		t.Errorf("distance_km = %v, want about 7350", resp.Metrics.DistanceKm)
	}
	if math.Abs(resp.Metrics.CO2EmissionsKg-resp.Metrics.DistanceKm*0.115) > 1e-6 {
		t.Errorf("co2 %v does not match distance %v", resp.Metrics.CO2EmissionsKg, resp.Metrics.DistanceKm)
	}
	t.Logf("[TEST LOG] KTM->LHR: %s", resp.Display.CO2)
}

func TestAirportSuggestEndpoint(t *testing.T) {
	client, baseURL := setupAPI(t)

	status, body := call(t, client, http.MethodGet, baseURL+"/api/airports?q=Kathmandu", nil)
	if status == http.StatusTooManyRequests {
		t.Skip("lookup quota exhausted for this client")
	}
	if status != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%s", http.StatusOK, status, string(body))
	}

	var got []struct {
		IATA string  `json:"iata"`
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal response: %v, raw=%s", err, string(body))
	}
	if len(got) == 0 {
		t.Fatalf("expected at least one suggestion for Kathmandu")
	}
	for _, a := range got {
		if len(a.IATA) != 3 || (a.Lat == 0 && a.Lon == 0) {
			t.Errorf("unsanitized suggestion %+v", a)
		}
	}
}

// TestLookupQuotaGuard seeds a one-lookup allowance for the local anonymous caller and expects
// the second lookup to be refused.
func TestLookupQuotaGuard(t *testing.T) {
	client, baseURL := setupAPI(t)

	dsn := strings.TrimSpace(os.Getenv("ECOFLY_TEST_DSN"))
	if dsn == "" {
		t.Skip("ECOFLY_TEST_DSN not set; skipping quota guard test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	today := time.Now().UTC().Format("2006-01-02")
	uids := []string{"anon:127.0.0.1", "anon:::1"}
	for _, uid := range uids {
		if _, err := db.Exec(ctx, `
			INSERT INTO lookup_usage (uid, lookups_remaining, last_reset_day)
			VALUES ($1, 1, $2)
			ON CONFLICT (uid) DO UPDATE SET
				lookups_remaining = EXCLUDED.lookups_remaining,
				last_reset_day = EXCLUDED.last_reset_day
		`, uid, today); err != nil {
			t.Fatalf("seed lookup_usage: %v", err)
		}
	}
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		_, _ = db.Exec(cleanupCtx, "DELETE FROM lookup_usage WHERE uid = ANY($1)", uids)
	})

	if status, body := call(t, client, http.MethodGet, baseURL+"/api/airports?q=london", nil); status != http.StatusOK {
		t.Fatalf("first lookup: expected %d, got %d, body=%s", http.StatusOK, status, string(body))
	}
	status, body := call(t, client, http.MethodGet, baseURL+"/api/airports?q=london", nil)
	if status != http.StatusTooManyRequests {
		t.Fatalf("second lookup: expected %d, got %d, body=%s", http.StatusTooManyRequests, status, string(body))
	}
	t.Logf("[TEST LOG] Should fail due to exhausted quota: %s", string(body))
}

func setupAPI(t *testing.T) (*http.Client, string) {
	t.Helper()
	loadDotEnv(t)

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("ECOFLY_API_BASE_URL")), "/")
	if baseURL == "" {
		t.Skip("ECOFLY_API_BASE_URL not set; skipping live API tests")
	}
	client := &http.Client{Timeout: 30 * time.Second}
	waitForAPIReady(t, client, baseURL)
	return client, baseURL
}

func call(t *testing.T, client *http.Client, method, url string, payload any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("call %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, body
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}

// loadDotEnv loads the nearest .env above the working directory without overriding the environment.
func loadDotEnv(t *testing.T) {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			if err := godotenv.Load(candidate); err != nil {
				t.Logf("load %s: %v", candidate, err)
			}
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
