//go:build lambda

package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/katalvlaran/aoc2022/internal/config"
	"github.com/katalvlaran/aoc2022/internal/logging"
)

func main() {
	cfg := config.Default()
	if loaded, err := config.LoadConfig(""); err == nil {
		cfg = loaded
	} else {
		logging.Warn("using default configuration", "error", err)
	}
	logging.Init(cfg.Logging.Level, "json")

	lambda.Start(newHandler(cfg))
}
