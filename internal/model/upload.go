package model

// UploadedFile describes a stored upload handed over by the HTTP
// boundary; type, size and count are already validated there.
type UploadedFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
}
