package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrLanguageNotSupported = errors.New("language not supported")
	ErrEmptyLanguageCode    = errors.New("empty language code in translations")
	ErrFailedToMarshalJSON  = errors.New("failed to marshal translations to JSON")

	// Parsing
	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")
	ErrUnsupportedFormat = errors.New("unsupported translation file format")

	// Loading
	ErrLoadingCancelled      = errors.New("loading translations cancelled")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrFailedToParseFile     = errors.New("failed to parse translation file")
	ErrFailedToReadDirectory = errors.New("failed to read translation directory")
	ErrNoTranslationsFound   = errors.New("no translation files found")
)
