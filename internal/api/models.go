package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UploadResponse is returned after a successful upload: the asset id, the
// detected category and the conversion targets worth offering.
type UploadResponse struct {
	FileID      string   `json:"file_id"`
	Filename    string   `json:"filename"`
	Category    string   `json:"category"`
	MimeType    string   `json:"mime_type"`
	Suggestions []string `json:"suggestions"`
}

// ConvertRequest asks for a previously uploaded asset to be converted.
type ConvertRequest struct {
	FileID       string `json:"file_id"`
	Filename     string `json:"filename"`
	TargetFormat string `json:"target_format"`
}

// Validate checks the request fields before any filesystem access.
func (r ConvertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileID, validation.Required, is.UUID),
		validation.Field(&r.Filename, validation.Required),
		validation.Field(&r.TargetFormat, validation.Required),
	)
}

// errorResponse is the uniform JSON error shape.
type errorResponse struct {
	Error string `json:"error"`
}
