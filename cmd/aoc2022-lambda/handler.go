//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/katalvlaran/aoc2022/blueprint"
	"github.com/katalvlaran/aoc2022/geode"
	"github.com/katalvlaran/aoc2022/internal/config"
	"github.com/katalvlaran/aoc2022/internal/logging"
	"github.com/katalvlaran/aoc2022/puzzle/day19"
	"github.com/katalvlaran/aoc2022/resource"
)

// Request limits. One more branch than there are successors keeps them all.
const (
	maxRequestMinutes  = 64
	maxRequestBranches = 1 + resource.NumKinds
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type geodesRequest struct {
	// Blueprints is the document to parse, in Format.
	Blueprints string `json:"blueprints"`
	// Format is text (default), json or yaml.
	Format      string `json:"format"`
	Minutes     int    `json:"minutes"`
	MaxBranches *int   `json:"maxBranches"`
}

type handlerFunc func(context.Context, events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error)

// newHandler returns the function-URL handler. cfg supplies the default
// budget, branching limit and worker count.
func newHandler(cfg *config.Config) handlerFunc {
	return func(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
		body := event.Body
		if event.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(body)
			if err != nil {
				return errResp(400, "invalid base64 body")
			}
			body = string(decoded)
		}

		var req geodesRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return errResp(400, "invalid JSON: "+err.Error())
		}
		if req.Blueprints == "" {
			return errResp(400, "missing blueprints field")
		}

		format := blueprint.FormatText
		if req.Format != "" {
			f, err := blueprint.ParseFormat(req.Format)
			if err != nil {
				return errResp(400, err.Error())
			}
			format = f
		}
		bps, err := blueprint.Parse(format, []byte(req.Blueprints))
		if err != nil {
			return errResp(400, err.Error())
		}

		dcfg := cfg.Day19()
		if req.MaxBranches != nil {
			if *req.MaxBranches > maxRequestBranches {
				return errResp(400, fmt.Sprintf("maxBranches cannot exceed %d", maxRequestBranches))
			}
			dcfg.MaxBranches = *req.MaxBranches
		}
		minutes := req.Minutes
		if minutes == 0 {
			minutes = dcfg.PartOneMinutes
		}
		if minutes > maxRequestMinutes {
			return errResp(400, fmt.Sprintf("minutes cannot exceed %d", maxRequestMinutes))
		}

		start := time.Now()
		evals, err := day19.EvaluateAll(ctx, bps, minutes, dcfg)
		switch {
		case errors.Is(err, day19.ErrInvalidConfig), errors.Is(err, geode.ErrNonPositiveBudget):
			return errResp(400, err.Error())
		case err != nil:
			logging.Error("search failed", "error", err)
			return errResp(500, err.Error())
		}
		logging.Info("geodes evaluated",
			"request_id", event.RequestContext.RequestID,
			"blueprints", len(bps),
			"minutes", minutes,
			"elapsed", time.Since(start),
		)

		respJSON, err := json.Marshal(day19.Summarize(evals, minutes, dcfg))
		if err != nil {
			logging.Error("encode response", "error", err)
			return errResp(500, "failed to encode response")
		}
		return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
	}
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
