package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/selahapp/selah/internal/cli"
	"github.com/selahapp/selah/internal/keyring"
)

// KeyringSetCmd stores the content-analysis API key in the OS keyring
type KeyringSetCmd struct {
	APIKey string `arg:"" help:"Content-analysis API key to store in the keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if strings.TrimSpace(cmd.APIKey) == "" {
		return errors.New("API key cannot be empty")
	}

	if err := keyring.SetAnalysisKey(cmd.APIKey); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}

	fmt.Println("✓ Analysis API key stored successfully in OS keyring")
	fmt.Println("  Remote analysis is used when SELAH_ANALYSIS_URL is also set")
	return nil
}

// KeyringGetCmd confirms whether an API key is stored, without printing it
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	key, err := keyring.GetAnalysisKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring. Use 'selah keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve API key from keyring: %w", err)
	}

	fmt.Printf("Analysis API key stored: %s\n", maskKey(key))
	return nil
}

// KeyringDeleteCmd removes the API key from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteAnalysisKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}

	fmt.Println("✓ Analysis API key deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}

	fmt.Println("✓ OS keyring is available")

	_, err := keyring.GetAnalysisKey()
	if err == nil {
		fmt.Println("✓ Analysis API key is stored in keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("ℹ No analysis API key stored in keyring")
	}
	return nil
}

// maskKey shows just enough of a key to recognize it
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
