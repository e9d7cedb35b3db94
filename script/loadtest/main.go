// Command loadtest fires concurrent transfers between seeded accounts and
// checks that the sum of their balances is unchanged afterwards.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// account is a logged-in participant
type account struct {
	ID    string
	UpiID string
	Token string
}

// sendRequest mirrors the POST /api/send body
type sendRequest struct {
	SenderID           string `json:"senderId"`
	ReceiverIdentifier string `json:"receiverIdentifier"`
	Amount             string `json:"amount"`
	Password           string `json:"password"`
	Category           string `json:"category"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	sync.Mutex
	TotalRequests int
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	ResponseTimes []time.Duration
	TotalTime     time.Duration
}

var categories = []string{"Food", "Groceries", "Shopping", "Rent", "Other", "Travel"}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of transfers to send")
	upiIDs := flag.String("u", "alice@ybl,bob@sbi,charlie@upi", "Comma-separated UPI IDs of seeded accounts")
	password := flag.String("p", "1234", "Password shared by the seeded accounts")
	baseURL := flag.String("url", "http://localhost:5000", "Base URL of the API")
	delayMs := flag.Int("delay", 0, "Delay between requests of one worker in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	var accounts []account
	for _, upi := range strings.Split(*upiIDs, ",") {
		acc, err := login(client, *baseURL, strings.TrimSpace(upi), *password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "login %s: %v\n", upi, err)
			os.Exit(1)
		}
		accounts = append(accounts, acc)
	}
	if len(accounts) < 2 {
		fmt.Fprintln(os.Stderr, "need at least two accounts")
		os.Exit(1)
	}

	before, err := totalBalance(client, *baseURL, accounts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read balances: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Load testing /api/send across %d accounts\n", len(accounts))
	fmt.Printf("Concurrency: %d goroutines, transfers: %d\n", *concurrency, *totalRequests)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *password, *delayMs, accounts, jobs, stats)
		}()
	}
	wg.Wait()
	stats.TotalTime = time.Since(start)

	after, err := totalBalance(client, *baseURL, accounts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read balances: %v\n", err)
		os.Exit(1)
	}

	printResults(stats)

	fmt.Println("\n----------------- CONSERVATION -----------------")
	fmt.Printf("Total balance before: %s\n", before.StringFixed(2))
	fmt.Printf("Total balance after:  %s\n", after.StringFixed(2))
	if !before.Equal(after) {
		fmt.Println("FAIL: money was created or destroyed")
		os.Exit(2)
	}
	fmt.Println("OK: balances conserved")
}

func worker(client *http.Client, baseURL, password string, delayMs int, accounts []account, jobs <-chan int, stats *TestStats) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		from := accounts[rand.Intn(len(accounts))]
		to := accounts[rand.Intn(len(accounts))]
		for to.ID == from.ID {
			to = accounts[rand.Intn(len(accounts))]
		}

		body := sendRequest{
			SenderID:           from.ID,
			ReceiverIdentifier: to.UpiID,
			Amount:             fmt.Sprintf("%d.%02d", 1+rand.Intn(50), rand.Intn(100)),
			Password:           password,
			Category:           categories[rand.Intn(len(categories))],
		}

		result := post(client, baseURL+"/api/send", from.Token, body)

		stats.Lock()
		stats.StatusCounts[result.StatusCode]++
		if result.Error != nil {
			stats.ErrorCounts[result.Error.Error()]++
		}
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		stats.Unlock()
	}
}

func post(client *http.Client, url, token string, body any) TestResult {
	raw, err := json.Marshal(body)
	if err != nil {
		return TestResult{Error: err}
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return TestResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := client.Do(req)
	result := TestResult{ResponseTime: time.Since(start)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		result.Error = fmt.Errorf("%d %s", resp.StatusCode, apiErr.Message)
	}
	return result
}

func login(client *http.Client, baseURL, upiID, password string) (account, error) {
	raw, _ := json.Marshal(map[string]string{"upiId": upiID, "password": password})
	resp, err := client.Post(baseURL+"/api/auth/login", "application/json", bytes.NewReader(raw))
	if err != nil {
		return account{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return account{}, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var out struct {
		Token string `json:"token"`
		User  struct {
			UserID string `json:"userId"`
			UpiID  string `json:"upiId"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return account{}, err
	}
	return account{ID: out.User.UserID, UpiID: out.User.UpiID, Token: out.Token}, nil
}

func totalBalance(client *http.Client, baseURL string, accounts []account) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, acc := range accounts {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/api/balance/"+acc.ID, nil)
		if err != nil {
			return total, err
		}
		req.Header.Set("Authorization", "Bearer "+acc.Token)
		resp, err := client.Do(req)
		if err != nil {
			return total, err
		}

		var out struct {
			Balance string `json:"balance"`
		}
		err = json.NewDecoder(resp.Body).Decode(&out)
		resp.Body.Close()
		if err != nil {
			return total, err
		}
		balance, err := decimal.NewFromString(out.Balance)
		if err != nil {
			return total, err
		}
		total = total.Add(balance)
	}
	return total, nil
}

func printResults(stats *TestStats) {
	times := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		idx := len(times) * p / 100
		if idx >= len(times) {
			idx = len(times) - 1
		}
		return times[idx]
	}

	var total time.Duration
	for _, t := range times {
		total += t
	}
	var avg time.Duration
	if len(times) > 0 {
		avg = total / time.Duration(len(times))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(len(times))/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P90 Response:        %v\n", percentile(90))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
