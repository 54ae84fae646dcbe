package i18n

import "errors"

var (
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrNoTranslations       = errors.New("no translations found")
	ErrInvalidStructure     = errors.New("invalid translation file structure")
)
