package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pixelprompt/internal/common"
	"github.com/dmitrijs2005/pixelprompt/internal/logging"
	"github.com/dmitrijs2005/pixelprompt/internal/models"
)

// -------- test fakes --------

type noopLogger struct{}

func (noopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (l noopLogger) With(args ...any) logging.Logger                  { return l }

type fakeAuthorizer struct {
	resp *models.UploadResponse
	err  error

	got *models.UploadRequest
}

func (f *fakeAuthorizer) Authorize(ctx context.Context, req *models.UploadRequest) (*models.UploadResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

// -------- tests --------

func TestUploadHandle_Success(t *testing.T) {
	svc := &fakeAuthorizer{resp: &models.UploadResponse{
		UploadURL: "https://signed.example/put",
		S3Key:     "uploads/default-user/1-aa.png",
		ExpiresIn: 300,
	}}
	h := NewUploadHandler(svc, noopLogger{})

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"fileName":"cat.png","fileType":"image/png","fileSize":500000}`,
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	var body models.UploadResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, *svc.resp, body)

	require.NotNil(t, svc.got)
	assert.Equal(t, "cat.png", svc.got.FileName)
	assert.Equal(t, int64(500000), svc.got.FileSize)
}

func TestUploadHandle_ValidationErrorIs400(t *testing.T) {
	svc := &fakeAuthorizer{err: fmt.Errorf("%w: Invalid file type. Only JPEG and PNG images are allowed.", common.ErrValidation)}
	h := NewUploadHandler(svc, noopLogger{})

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"fileName":"a.gif","fileType":"image/gif","fileSize":100}`,
	})
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Invalid file type. Only JPEG and PNG images are allowed.", body.Error)
}

func TestUploadHandle_EmptyBodyIsValidationError(t *testing.T) {
	svc := &fakeAuthorizer{err: fmt.Errorf("%w: Missing required fields: fileName, fileType, fileSize", common.ErrValidation)}
	h := NewUploadHandler(svc, noopLogger{})

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	require.NotNil(t, svc.got, "empty body must still reach service validation")
}

func TestUploadHandle_MalformedJSONIs400(t *testing.T) {
	svc := &fakeAuthorizer{}
	h := NewUploadHandler(svc, noopLogger{})

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{Body: "{not json"})
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Nil(t, svc.got)
}

func TestUploadHandle_InternalErrorIs500(t *testing.T) {
	svc := &fakeAuthorizer{err: fmt.Errorf("%w: failed to sign upload URL: boom", common.ErrInternal)}
	h := NewUploadHandler(svc, noopLogger{})

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"fileName":"a.png","fileType":"image/png","fileSize":100}`,
	})
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Failed to generate upload URL", body.Error)
	assert.NotEmpty(t, body.Message)
}
