package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "walletd-cli",
		Short: "walletd CLI tool",
		Long:  `A command line interface for interacting with the walletd API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the walletd API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Session operations",
	}
	sessionCmd.AddCommand(openSessionCmd(), snapshotCmd())

	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Money actions and wallet reads",
	}
	walletCmd.AddCommand(
		amountActionCmd("deposit", "deposits", "Deposit cash into the primary account"),
		amountActionCmd("withdraw", "withdrawals", "Withdraw cash from the primary account"),
		amountActionCmd("transfer", "transfers", "Record an internal transfer out"),
		purchaseCmd(),
		p2pCmd(),
		payVendorCmd(),
		recordsCmd(),
	)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Derived reports",
	}
	reportCmd.AddCommand(summaryCmd(), cryptoCmd())

	inventoryCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory operations",
	}
	inventoryCmd.AddCommand(consumeCmd(), itemsCmd())

	rootCmd.AddCommand(sessionCmd, walletCmd, reportCmd, inventoryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func openSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open a fresh session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/sessions", nil)
		},
	}
}

func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <session-id>",
		Short: "Show accounts, totals and the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/sessions/" + args[0] + "/")
		},
	}
}

func amountActionCmd(name, path, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <session-id> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/sessions/"+args[0]+"/"+path,
				map[string]string{"amount": args[1]})
		},
	}
}

func purchaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purchase <session-id> <description> <amount>",
		Short: "Record a described purchase",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/sessions/"+args[0]+"/purchases",
				map[string]string{"description": args[1], "amount": args[2]})
		},
	}
}

func p2pCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "p2p <session-id> <recipient> <amount>",
		Short: "Send a peer-to-peer payment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/sessions/"+args[0]+"/p2p-payments",
				map[string]string{"recipient": args[1], "amount": args[2]})
		},
	}
}

func payVendorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay-vendor <session-id> <vendor-name>",
		Short: "Pay a vendor; the amount is chosen server-side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/sessions/"+args[0]+"/vendor-payments",
				map[string]string{"vendor_name": args[1]})
		},
	}
}

func recordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records <session-id>",
		Short: "List ledger records, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := getWithRetry("/api/v1/sessions/" + args[0] + "/records")
			if err != nil {
				return err
			}

			var records []struct {
				ID          string `json:"id"`
				Description string `json:"description"`
				Amount      string `json:"amount"`
				Currency    string `json:"currency"`
				Category    string `json:"category"`
			}
			if err := json.Unmarshal(body, &records); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			for _, r := range records {
				fmt.Printf("%-28s %-30s %12s %s\n",
					r.ID, truncate(r.Description, 30), r.Amount, r.Currency)
			}
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <session-id>",
		Short: "Show income, spend, savings and burn rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/sessions/" + args[0] + "/reports/summary")
		},
	}
}

func cryptoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crypto <session-id>",
		Short: "Show the digital assets valuation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/sessions/" + args[0] + "/reports/crypto")
		},
	}
}

func consumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consume <session-id> <item-id> <quantity>",
		Short: "Consume stock and generate a replenishment request",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/sessions/"+args[0]+"/inventory/consume",
				map[string]string{"item_id": args[1], "quantity": args[2]})
		},
	}
}

func itemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items <session-id>",
		Short: "List stocked items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/sessions/" + args[0] + "/inventory/items")
		},
	}
}

// getWithRetry fetches a URL, retrying transient failures with
// exponential backoff. Only GETs are retried; mutating requests go out
// exactly once.
func getWithRetry(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}

	var body []byte
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = timeout

	err := backoff.Retry(func() error {
		resp, err := client.Get(baseURL + path)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error (status %d)", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("request failed (status %d): %s", resp.StatusCode, data))
		}

		body = data
		return nil
	}, b)

	return body, err
}

func getAndPrint(path string) error {
	body, err := getWithRetry(path)
	if err != nil {
		return err
	}
	return printBody(body)
}

func postAndPrint(path string, payload any) error {
	client := &http.Client{Timeout: timeout}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	resp, err := client.Post(baseURL+path, "application/json", reqBody)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, body)
	}

	return printBody(body)
}

func printBody(body []byte) error {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	printJSON(parsed)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
