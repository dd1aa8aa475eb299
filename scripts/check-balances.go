//go:build ignore

// Prints balances reported by a running api-server.
//
//	go run scripts/check-balances.go -token 0x... 0xabc... 0xdef...
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

type balancesResponse struct {
	Asset    string `json:"asset"`
	Decimals uint8  `json:"decimals"`
	Balances []struct {
		Address string          `json:"address"`
		Amount  json.Number     `json:"amount"`
		Value   json.RawMessage `json:"value"`
	} `json:"balances"`
}

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "api-server base URL")
	token := flag.String("token", "", "ERC20 token address (empty for native)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: check-balances [-api URL] [-token ADDR] ADDRESS...")
		os.Exit(2)
	}

	q := url.Values{}
	q.Set("human", "true")
	if *token != "" {
		q.Set("token", *token)
	}
	for _, addr := range flag.Args() {
		q.Add("address", addr)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(*apiURL + "/api/v1/balances?" + q.Encode())
	if err != nil {
		fmt.Printf("✗ request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		fmt.Printf("✗ %s: %s\n", resp.Status, e.Error)
		os.Exit(1)
	}

	var out balancesResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		fmt.Printf("✗ decode: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Balances (%s, %d decimals) ===\n", out.Asset, out.Decimals)
	for _, b := range out.Balances {
		fmt.Printf("✓ %s: %s (%s)\n", b.Address, b.Value, b.Amount)
	}
}
