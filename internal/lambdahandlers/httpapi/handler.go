package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/mrled/suns/palin/internal/logger"
	"github.com/mrled/suns/palin/internal/model"
	"github.com/mrled/suns/palin/internal/palindrome"
	"github.com/mrled/suns/palin/internal/repository"
	"github.com/mrled/suns/palin/internal/selftest"
	"github.com/mrled/suns/palin/internal/service/checker"
)

// Handler holds the dependencies for the httpapi Lambda handler
type Handler struct {
	checker *checker.Service
	log     *slog.Logger
}

// CheckRequest represents the expected JSON payload for a check
type CheckRequest struct {
	Text   string `json:"text"`
	Fold   string `json:"fold,omitempty"`
	Strict bool   `json:"strict,omitempty"`
}

// CheckResponse represents the JSON response for a check
type CheckResponse struct {
	Text         string `json:"text"`
	Fold         string `json:"fold"`
	IsPalindrome bool   `json:"isPalindrome"`
	Rev          int64  `json:"rev,omitempty"`
}

// SelfTestResponse represents the JSON response for a self-test run
type SelfTestResponse struct {
	Passed  bool              `json:"passed"`
	Error   string            `json:"error,omitempty"`
	Results []selftest.Result `json:"results"`
}

// NewHandler creates a new httpapi handler configured from the environment.
// DYNAMODB_TABLE enables check history; DYNAMODB_ENDPOINT overrides its endpoint.
func NewHandler() (*Handler, error) {
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "httpapi")
	logger.SetDefault(log)

	cfg := repository.RepositoryConfig{
		DynamoTable:    os.Getenv("DYNAMODB_TABLE"),
		DynamoEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
	}

	var repo model.CheckRepository
	if cfg.Enabled() {
		if cfg.DynamoEndpoint == "" && os.Getenv("AWS_REGION") == "" {
			return nil, fmt.Errorf("AWS_REGION environment variable is required when DYNAMODB_ENDPOINT is not set")
		}
		r, err := repository.NewRepository(context.Background(), cfg, log)
		if err != nil {
			log.Error("Failed to initialize repository", slog.String("error", err.Error()))
			return nil, err
		}
		repo = r
	} else {
		log.Info("DYNAMODB_TABLE not set, check history disabled")
	}

	return NewHandlerWithRepository(repo, log), nil
}

// NewHandlerWithRepository creates a handler around an existing repository, which may be nil
func NewHandlerWithRepository(repo model.CheckRepository, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		checker: checker.NewService(repo, log),
		log:     log,
	}
}

// Handle processes API Gateway HTTP requests
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	requestLogger := logger.WithLambda(h.log,
		os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		request.RequestContext.RequestID)

	requestLogger.Info("Incoming request",
		slog.String("method", request.RequestContext.HTTP.Method),
		slog.String("path", request.RequestContext.HTTP.Path),
		slog.String("raw_path", request.RawPath))

	// For API Gateway v2, the path is in RequestContext.HTTP.Path
	path := request.RequestContext.HTTP.Path
	if path == "" {
		path = request.RawPath
	}
	path = strings.TrimPrefix(path, "/api")

	switch {
	case strings.HasSuffix(path, "/v1/check"):
		return h.handleCheck(ctx, request, requestLogger)
	case strings.HasSuffix(path, "/v1/selftest"):
		return h.handleSelfTest(request, requestLogger)
	default:
		requestLogger.Warn("Path not matched", slog.String("path", path))
		return errorResponseV2(http.StatusNotFound, fmt.Sprintf("Unknown endpoint: %s", path))
	}
}

func (h *Handler) handleCheck(ctx context.Context, request events.APIGatewayV2HTTPRequest, log *slog.Logger) (events.APIGatewayV2HTTPResponse, error) {
	method := request.RequestContext.HTTP.Method
	if method != http.MethodPost {
		log.Warn("Method validation failed", slog.String("received_method", method))
		return errorResponseV2(http.StatusMethodNotAllowed, fmt.Sprintf("Method not allowed. Only POST is supported for this endpoint (received: %s)", method))
	}

	var req CheckRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponseV2(http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
	}

	fold, err := palindrome.ParseFold(req.Fold)
	if err != nil {
		return errorResponseV2(http.StatusBadRequest, err.Error())
	}

	record, err := h.checker.Check(ctx, req.Text, palindrome.Options{Fold: fold, Strict: req.Strict})
	if errors.Is(err, palindrome.ErrInvalidInput) {
		return errorResponseV2(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		log.Error("Check failed", slog.String("error", err.Error()))
		return errorResponseV2(http.StatusInternalServerError, fmt.Sprintf("check failed: %v", err))
	}

	return jsonResponseV2(http.StatusOK, CheckResponse{
		Text:         record.Text,
		Fold:         record.Fold,
		IsPalindrome: record.IsPalindrome,
		Rev:          record.Rev,
	})
}

func (h *Handler) handleSelfTest(request events.APIGatewayV2HTTPRequest, log *slog.Logger) (events.APIGatewayV2HTTPResponse, error) {
	method := request.RequestContext.HTTP.Method
	if method != http.MethodGet {
		log.Warn("Method validation failed", slog.String("received_method", method))
		return errorResponseV2(http.StatusMethodNotAllowed, fmt.Sprintf("Method not allowed. Only GET is supported for this endpoint (received: %s)", method))
	}

	fold, err := palindrome.ParseFold(request.QueryStringParameters["fold"])
	if err != nil {
		return errorResponseV2(http.StatusBadRequest, err.Error())
	}

	results, err := h.checker.SelfTest(palindrome.Options{Fold: fold})
	resp := SelfTestResponse{Passed: err == nil, Results: results}
	if err != nil {
		resp.Error = err.Error()
	}
	return jsonResponseV2(http.StatusOK, resp)
}

func jsonResponseV2(statusCode int, v any) (events.APIGatewayV2HTTPResponse, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return errorResponseV2(http.StatusInternalServerError, "failed to generate response")
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

// errorResponseV2 creates a standardized error response for API Gateway v2
func errorResponseV2(statusCode int, message string) (events.APIGatewayV2HTTPResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": message})

	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}
