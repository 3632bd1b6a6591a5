// Package models defines the data models persisted in DynamoDB and the
// JSON request/response shapes of the public API.
package models

// ImageRecord represents a single analyzed image in the metadata table.
// (UserID, Timestamp) uniquely identifies a record; Timestamp is the
// creation time in milliseconds since epoch, stored as a string.
//
// The record is written exactly once by the analysis pipeline and never
// updated afterwards. S3URL is ephemeral: it is recomputed with a fresh
// presigned URL on every gallery query and never trusted from storage.
type ImageRecord struct {
	UserID      string   `json:"userId" dynamodbav:"userId"`
	Timestamp   string   `json:"timestamp" dynamodbav:"timestamp"`
	S3Key       string   `json:"s3Key" dynamodbav:"s3Key"`
	S3URL       string   `json:"s3Url,omitempty" dynamodbav:"s3Url"`
	FileName    string   `json:"fileName" dynamodbav:"fileName"`
	ContentType string   `json:"contentType" dynamodbav:"contentType"`
	FileSize    int64    `json:"fileSize" dynamodbav:"fileSize"`
	Title       string   `json:"title" dynamodbav:"title"`
	Caption     string   `json:"caption" dynamodbav:"caption"`
	Tags        []string `json:"tags" dynamodbav:"tags"`
	CreatedAt   string   `json:"createdAt" dynamodbav:"createdAt"`
	ProcessedAt string   `json:"processedAt" dynamodbav:"processedAt"`
}
