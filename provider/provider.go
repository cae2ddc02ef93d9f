// Package provider lists the content backends: the builtin REST provider and custom Lua scripts.
package provider

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/auth"
	"github.com/streamflix-cli/streamflix/filesystem"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/network"
	"github.com/streamflix-cli/streamflix/provider/custom"
	"github.com/streamflix-cli/streamflix/provider/moviebox"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/util"
	"github.com/streamflix-cli/streamflix/where"
)

// ErrNotFound is returned by Default for unknown provider names.
var ErrNotFound = errors.New("provider not found")

// Provider describes a source that can be created on demand.
type Provider struct {
	ID           string
	Name         string
	IsCustom     bool
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the providers compiled into the binary.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   moviebox.ID,
			Name: moviebox.ID,
			CreateSource: func() (source.Source, error) {
				network.Configure()
				return moviebox.New(viper.GetString(key.APIBaseURL), auth.Resolve(), network.Client)
			},
		},
	}
}

// Customs returns the Lua providers found in the providers directory.
func Customs() []*Provider {
	providers, _ := CustomProviders()
	return providers
}

// All returns builtin providers followed by custom ones.
func All() []*Provider {
	return append(Builtins(), Customs()...)
}

// Get finds a provider by name.
func Get(name string) (*Provider, bool) {
	return lo.Find(All(), func(p *Provider) bool {
		return p.Name == name
	})
}

// Default creates the source named by provider.default.
func Default() (source.Source, error) {
	name := viper.GetString(key.DefaultProvider)

	p, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return p.CreateSource()
}

// CustomProviders scans where.Providers() for Lua scripts.
func CustomProviders() ([]*Provider, error) {
	dir := where.Providers()

	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		path := filepath.Join(dir, f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			CreateSource: func() (source.Source, error) {
				return custom.LoadSource(path)
			},
		})
	}

	return providers, nil
}
