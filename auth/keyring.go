// Package auth stores and resolves the content API key.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/zalando/go-keyring"
)

const user = "api-key"

// ErrNoKey is returned when no API key is stored in the keyring.
var ErrNoKey = errors.New("no api key stored")

// SetKey persists the API key to the system keyring.
func SetKey(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("api key is empty")
	}

	if err := keyring.Set(constant.App, user, apiKey); err != nil {
		return fmt.Errorf("store api key: %w", err)
	}
	return nil
}

// GetKey retrieves the API key from the system keyring.
func GetKey() (string, error) {
	apiKey, err := keyring.Get(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoKey
	}
	if err != nil {
		return "", fmt.Errorf("read api key: %w", err)
	}
	return apiKey, nil
}

// DeleteKey removes the API key from the system keyring.
func DeleteKey() error {
	err := keyring.Delete(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNoKey
	}
	return err
}

// Origin names where a resolved key came from.
type Origin string

const (
	FromConfig  Origin = "config"
	FromKeyring Origin = "keyring"
)

// Resolve returns the API key to use: api.key when set, the keyring otherwise.
// None means requests go out without a key.
func Resolve() mo.Option[string] {
	apiKey, _ := ResolveWithOrigin()
	return apiKey
}

// ResolveWithOrigin is Resolve that also reports the key's origin.
func ResolveWithOrigin() (mo.Option[string], Origin) {
	if apiKey := strings.TrimSpace(viper.GetString(key.APIKey)); apiKey != "" {
		return mo.Some(apiKey), FromConfig
	}

	if apiKey, err := GetKey(); err == nil {
		return mo.Some(apiKey), FromKeyring
	}

	return mo.None[string](), ""
}

// Mask hides all but the last four characters of apiKey.
func Mask(apiKey string) string {
	const visible = 4
	if len(apiKey) <= visible {
		return strings.Repeat("*", len(apiKey))
	}
	return strings.Repeat("*", len(apiKey)-visible) + apiKey[len(apiKey)-visible:]
}
