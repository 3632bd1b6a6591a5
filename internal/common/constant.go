package common

// DefaultUserID is the sentinel user identifier used when a request or
// storage key does not carry one.
const DefaultUserID = "default-user"

// UploadKeyPrefix is the first path segment of every upload storage key.
// Keys have the form uploads/{userId}/{unixMillis}-{random16hex}.{ext}.
const UploadKeyPrefix = "uploads"
