package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/player"
	"github.com/streamflix-cli/streamflix/where"
)

// UnknownKeyError is returned for a name that is neither a key nor a group.
type UnknownKeyError struct {
	Name    string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Name, e.Closest)
}

// Group is the section a key belongs to, e.g. "api" for "api.timeout".
func (f *Field) Group() string {
	group, _, _ := strings.Cut(f.Key, ".")
	return group
}

// Groups lists the sections of the registry in order.
func Groups() []string {
	groups := lo.Uniq(lo.Map(lo.Values(Default), func(f Field, _ int) string {
		return f.Group()
	}))
	sort.Strings(groups)
	return groups
}

// Select resolves names into fields. A name is either a full key or a group.
// No names select the whole registry. The result is sorted by key.
func Select(names ...string) ([]Field, error) {
	if len(names) == 0 {
		return sorted(lo.Values(Default)), nil
	}

	selected := make(map[string]Field)
	for _, name := range names {
		if field, ok := Default[name]; ok {
			selected[name] = field
			continue
		}

		group := lo.PickBy(Default, func(_ string, f Field) bool { return f.Group() == name })
		if len(group) == 0 {
			return nil, unknown(name)
		}
		for k, f := range group {
			selected[k] = f
		}
	}

	return sorted(lo.Values(selected)), nil
}

// Lookup returns the field registered under name.
func Lookup(name string) (Field, error) {
	field, ok := Default[name]
	if !ok {
		return Field{}, unknown(name)
	}
	return field, nil
}

// Parse converts raw command line values into the type of the field's default
// and checks keys that only accept a fixed set of values.
func Parse(field Field, raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value for %s", field.Key)
	}

	switch field.Value.(type) {
	case []string:
		return raw, nil
	case bool:
		v, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects a boolean, got %q", field.Key, raw[0])
		}
		return v, nil
	case int:
		v, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", field.Key, raw[0])
		}
		if v < 0 {
			return nil, fmt.Errorf("%s must not be negative", field.Key)
		}
		return v, nil
	}

	v := raw[0]
	if check, ok := checks[field.Key]; ok {
		if err := check(v); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", field.Key, err)
		}
	}
	return v, nil
}

var checks = map[string]func(string) error{
	key.APITimeout: func(s string) error {
		d, err := time.ParseDuration(s)
		if err == nil && d < 0 {
			return errors.New("duration must not be negative")
		}
		return err
	},
	key.APIBaseURL: func(s string) error {
		if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
			return errors.New("expected an http or https URL")
		}
		return nil
	},
	key.Player:       oneOf(player.Available()),
	key.IconsVariant: oneOf(icon.AvailableVariants()),
	key.LogsLevel: func(s string) error {
		_, err := logrus.ParseLevel(s)
		return err
	},
}

func oneOf(choices []string) func(string) error {
	return func(s string) error {
		if lo.Contains(choices, s) {
			return nil
		}
		return fmt.Errorf("expected one of %s", strings.Join(choices, ", "))
	}
}

// Source names where the effective value of a key comes from.
type Source string

const (
	FromDefault Source = "default"
	FromFile    Source = "file"
	FromEnv     Source = "env"
)

// SourceOf reports whether the key is set by the environment, the config file or neither.
func SourceOf(field Field) Source {
	if _, ok := os.LookupEnv(field.Env()); ok {
		return FromEnv
	}
	if viper.InConfig(field.Key) {
		return FromFile
	}
	return FromDefault
}

// Path is the location of the config file, whether or not it exists.
func Path() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// Save writes the current settings, creating the file when it is missing.
func Save() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func sorted(fields []Field) []Field {
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}

func unknown(name string) error {
	candidates := append(lo.Keys(Default), Groups()...)
	closest := lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return &UnknownKeyError{Name: name, Closest: closest}
}
