package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/mrled/suns/palin/internal/lambdahandlers/httpapi"
	"github.com/mrled/suns/palin/internal/logger"
)

func main() {
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "lambda")
	logger.SetDefault(log)

	handler, err := httpapi.NewHandler()
	if err != nil {
		log.Error("Failed to initialize httpapi handler", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Info("Starting Lambda handler", slog.String("handler", "httpapi"))
	lambda.Start(handler.Handle)
}
