package models

// UploadRequest is the JSON body sent by clients to request a direct-upload
// authorization. UserID is optional and defaults to the sentinel user.
type UploadRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
	UserID   string `json:"userId,omitempty"`
}

// UploadResponse is returned on a successful upload-authorization request.
// The client must PUT the file to UploadURL within ExpiresIn seconds.
type UploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	S3Key     string `json:"s3Key"`
	ExpiresIn int    `json:"expiresIn"`
}

// GalleryResponse is returned by the gallery query endpoint.
type GalleryResponse struct {
	Images []ImageRecord `json:"images"`
	Count  int           `json:"count"`
}

// ErrorResponse is returned for any failed API request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
