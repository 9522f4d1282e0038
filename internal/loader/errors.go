package loader

import "errors"

var (
	// ErrNoModels is returned when the given sources declare no model.
	ErrNoModels = errors.New("loader: no models found")
	// ErrUnknownModel is returned when a requested model is not declared.
	ErrUnknownModel = errors.New("loader: unknown model")
	// ErrUnsupportedFile is returned for sources that are neither Go nor YAML.
	ErrUnsupportedFile = errors.New("loader: unsupported file type")
	// ErrMissingTable is returned for a YAML model without a table.
	ErrMissingTable = errors.New("loader: model has no table")
)
