package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultOpenTDBURL = "https://opentdb.com"

// openTDBCodes names the non-zero response_code values OpenTDB documents.
var openTDBCodes = map[int]string{
	1: "no results",
	2: "invalid parameter",
	3: "token not found",
	4: "token empty",
	5: "rate limited",
}

// OpenTDBClient fetches questions from the Open Trivia DB (no API key).
type OpenTDBClient struct {
	endpoint string
	http     *http.Client
}

// NewOpenTDBClient targets baseURL, or the public instance when empty.
func NewOpenTDBClient(baseURL string, httpClient *http.Client) *OpenTDBClient {
	if baseURL == "" {
		baseURL = defaultOpenTDBURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &OpenTDBClient{endpoint: baseURL + "/api.php", http: httpClient}
}

// OpenTDBQuestion holds the fields the importer stores. Text is HTML-escaped.
type OpenTDBQuestion struct {
	Difficulty    string `json:"difficulty"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
}

// Fetch requests amount questions from one OpenTDB category. A zero category means any.
func (c *OpenTDBClient) Fetch(ctx context.Context, amount, category int) ([]OpenTDBQuestion, error) {
	query := url.Values{"amount": {strconv.Itoa(amount)}}
	if category > 0 {
		query.Set("category", strconv.Itoa(category))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build opentdb request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call opentdb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("opentdb status %d", resp.StatusCode)
	}

	var payload struct {
		Code    int               `json:"response_code"`
		Results []OpenTDBQuestion `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode opentdb payload: %w", err)
	}
	if payload.Code != 0 {
		return nil, fmt.Errorf("opentdb response code %d (%s)", payload.Code, openTDBCodes[payload.Code])
	}
	return payload.Results, nil
}
