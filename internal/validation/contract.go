package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	AssetTypeErrorMessage     = "Invalid asset name, it should only contain lowercase and uppercase letters."
	ProjectFolderErrorMessage = `Please choose a folder which only includes alphanumeric, "_" and "-" characters.`
)

// AssetTypeRegex matches letters only, in any case
var AssetTypeRegex = regexp.MustCompile(`(?i)^[A-Z]+$`)

// ProjectFolderRegex matches only letters (upper and lower case), numbers, dashes, and underscores
var ProjectFolderRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var (
	ErrInvalidAssetType     = errors.New(AssetTypeErrorMessage)
	ErrInvalidProjectFolder = errors.New(ProjectFolderErrorMessage)
)

func isAssetType(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field name is not a string: %s", fl.FieldName()))
	}

	return IsValidAssetType(field.String()) == nil
}

func isProjectFolder(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field name is not a string: %s", fl.FieldName()))
	}

	return IsValidProjectFolder(field.String()) == nil
}

// IsValidAssetType reports whether name can be used as the asset type managed
// by a generated contract. Digits, dashes and underscores are rejected.
func IsValidAssetType(name string) error {
	if !AssetTypeRegex.MatchString(name) {
		return ErrInvalidAssetType
	}
	return nil
}

// IsValidProjectFolder checks the base name of folderPath, which becomes the
// generated project's package name.
func IsValidProjectFolder(folderPath string) error {
	if folderPath == "" {
		return ErrInvalidProjectFolder
	}
	if !ProjectFolderRegex.MatchString(filepath.Base(folderPath)) {
		return ErrInvalidProjectFolder
	}
	return nil
}
