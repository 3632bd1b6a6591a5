// Package handlers adapts the pipeline services to Lambda event payloads:
// API Gateway proxy requests for the synchronous endpoints and S3 events
// for the analysis pipeline.
package handlers

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrijs2005/pixelprompt/internal/models"
)

// corsHeaders are attached to every response; the API is browser-facing
// and permits all origins.
func corsHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

func jsonResponse(status int, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    corsHeaders(),
			Body:       `{"error":"internal error"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    corsHeaders(),
		Body:       string(body),
	}
}

func errorResponse(status int, errMsg, message string) events.APIGatewayProxyResponse {
	return jsonResponse(status, models.ErrorResponse{Error: errMsg, Message: message})
}
