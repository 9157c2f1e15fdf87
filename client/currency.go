package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// fallbackRate stands in when the rate service is unreachable, clearly
// flagged so the UI can label the figure as a placeholder.
const fallbackRate = 1.2

type Currency struct {
	Code   string
	Name   string
	Symbol string
}

// PopularCurrencies is the fixed picker list.
var PopularCurrencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩"},
}

type Conversion struct {
	Amount    float64
	Rate      float64
	Converted float64
	// Fallback marks a placeholder rate used because the live one could
	// not be fetched.
	Fallback bool
}

type Converter struct {
	baseURL    string
	httpClient *http.Client
}

func NewConverter(baseURL string) *Converter {
	return &Converter{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Convert looks up the live rate and applies it. Identical currencies
// short-circuit at rate 1; any fetch or lookup failure substitutes the
// fixed fallback rate instead of surfacing an error.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) Conversion {
	if from == to {
		return Conversion{Amount: amount, Rate: 1, Converted: amount}
	}

	rate, ok := c.fetchRate(ctx, from, to)
	if !ok {
		rate = fallbackRate
	}
	return Conversion{
		Amount:    amount,
		Rate:      rate,
		Converted: amount * rate,
		Fallback:  !ok,
	}
}

func (c *Converter) fetchRate(ctx context.Context, from, to string) (float64, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v4/latest/"+from, nil)
	if err != nil {
		return 0, false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false
	}
	var out ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, false
	}
	rate, ok := out.Rates[to]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// FormatAmount prefixes the value with the currency's symbol when it is in
// the picker list.
func FormatAmount(value float64, code string) string {
	symbol := ""
	for _, c := range PopularCurrencies {
		if c.Code == code {
			symbol = c.Symbol
			break
		}
	}
	return symbol + strconv.FormatFloat(value, 'f', 2, 64)
}
