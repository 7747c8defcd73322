package utils

import (
	"chainlearn/config"
	"encoding/json"
	"log"

	"github.com/go-resty/resty/v2"
)

// WalletProfile is the subset of the wallet provider's profile payload we consume
type WalletProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// FetchWalletProfile asks the external wallet provider for profile data
// attached to an address. Returns nil when the provider is not configured
// or has nothing for the address; login never depends on this call.
func FetchWalletProfile(walletAddress string) *WalletProfile {
	providerURL := config.AppConfig.WalletProviderURL
	if providerURL == "" {
		return nil
	}

	client := resty.New()
	resp, err := client.R().
		SetQueryParam("address", walletAddress).
		Get(providerURL)
	if err != nil {
		log.Printf("Wallet provider lookup failed for %s: %v", walletAddress, err)
		return nil
	}
	if resp.StatusCode() != 200 {
		log.Printf("Wallet provider returned %d for %s", resp.StatusCode(), walletAddress)
		return nil
	}

	var profile WalletProfile
	if err := json.Unmarshal(resp.Body(), &profile); err != nil {
		log.Printf("Failed to parse wallet provider response: %v", err)
		return nil
	}

	if profile.Username == "" && profile.Email == "" && profile.Avatar == "" {
		return nil
	}
	return &profile
}
