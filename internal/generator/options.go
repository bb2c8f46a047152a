package generator

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

const (
	DefaultVersion = "0.0.1"
	DefaultAuthor  = "John Doe"
	DefaultLicense = "Apache-2.0"
)

// Options is the flat record handed to a generator run.
type Options struct {
	Destination  string `json:"destination"`
	ContractType string `json:"contractType"`
	Language     string `json:"language"`
	Name         string `json:"name"`
	Version      string `json:"version"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	License      string `json:"license"`
	SkipInstall  bool   `json:"skip-install"`
	Asset        string `json:"asset,omitempty"`
	MspID        string `json:"mspId,omitempty"`
}

// Private reports whether the options describe a private data contract.
func (o Options) Private() bool {
	return o.ContractType == "private"
}

// Validate checks the fields every template relies on.
func (o Options) Validate() error {
	var errs []error
	if o.Destination == "" {
		errs = append(errs, errors.New("destination is required"))
	}
	if o.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if o.Language == "" {
		errs = append(errs, errors.New("language is required"))
	}
	if _, err := semver.StrictNewVersion(o.Version); err != nil {
		errs = append(errs, fmt.Errorf("version %q is not a valid semantic version: %w", o.Version, err))
	}
	if o.Private() && o.MspID == "" {
		errs = append(errs, errors.New("mspId is required for private data contracts"))
	}
	return errors.Join(errs...)
}

// Fields returns the options keyed the way the generator names them.
func (o Options) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"destination":  o.Destination,
		"contractType": o.ContractType,
		"language":     o.Language,
		"name":         o.Name,
		"version":      o.Version,
		"description":  o.Description,
		"author":       o.Author,
		"license":      o.License,
		"skip-install": o.SkipInstall,
		"asset":        o.Asset,
	}
	if o.MspID != "" {
		fields["mspId"] = o.MspID
	}
	return fields
}
