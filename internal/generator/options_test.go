package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validOptions() Options {
	return Options{
		Destination:  "/tmp/my-contract",
		ContractType: "default",
		Language:     "go",
		Name:         "my-contract",
		Version:      DefaultVersion,
		Description:  "My Smart Contract",
		Author:       DefaultAuthor,
		License:      DefaultLicense,
		Asset:        "MyAsset",
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validOptions().Validate())
	})

	t.Run("bad version", func(t *testing.T) {
		opts := validOptions()
		opts.Version = "1.0"
		assert.ErrorContains(t, opts.Validate(), `version "1.0" is not a valid semantic version`)
	})

	t.Run("private without mspId", func(t *testing.T) {
		opts := validOptions()
		opts.ContractType = "private"
		assert.ErrorContains(t, opts.Validate(), "mspId is required")
	})

	t.Run("collects every problem", func(t *testing.T) {
		err := Options{Version: DefaultVersion}.Validate()
		assert.ErrorContains(t, err, "destination is required")
		assert.ErrorContains(t, err, "name is required")
		assert.ErrorContains(t, err, "language is required")
	})
}

func TestOptionsFields(t *testing.T) {
	fields := validOptions().Fields()
	assert.NotContains(t, fields, "mspId")
	assert.Equal(t, false, fields["skip-install"])
	assert.Equal(t, "0.0.1", fields["version"])

	opts := validOptions()
	opts.ContractType = "private"
	opts.MspID = "Org1MSP"
	assert.Equal(t, "Org1MSP", opts.Fields()["mspId"])
}
