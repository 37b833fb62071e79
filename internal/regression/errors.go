package regression

import "errors"

var (
	// ErrInvalidArtifact indicates the artifact file is malformed or
	// internally inconsistent.
	ErrInvalidArtifact = errors.New("invalid regression artifact")

	// ErrSchemaMismatch indicates the input row columns do not match
	// the schema the pipeline was fit on.
	ErrSchemaMismatch = errors.New("input schema does not match pipeline schema")
)
