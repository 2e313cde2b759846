package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/pkg/errors"

	"f1telemetrydashboard/pkg/config"
	"f1telemetrydashboard/pkg/openf1"
	"f1telemetrydashboard/pkg/reference"
	"f1telemetrydashboard/pkg/summary"
	"f1telemetrydashboard/pkg/telemetry"
)

const (
	defaultDriverNumber = 44
	defaultLapNumber    = 1
)

var corsHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

type app struct {
	builder   *summary.Builder
	extractor *telemetry.Extractor
}

// handle serves one API Gateway request. Any panic below is converted into
// a generic 500 so a broken sub-pipeline cannot kill the function.
func (a *app) handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (resp events.APIGatewayV2HTTPResponse, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("lambda: panic: %v", rec)
			body, _ := json.Marshal(map[string]string{"error": fmt.Sprint(rec)})
			resp = events.APIGatewayV2HTTPResponse{StatusCode: http.StatusInternalServerError, Headers: corsHeaders, Body: string(body)}
			err = nil
		}
	}()

	// CORS preflight
	if req.RequestContext.HTTP.Method == http.MethodOptions {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusOK, Headers: corsHeaders}, nil
	}

	params := req.QueryStringParameters
	requestType := params["type"]
	if requestType == "" {
		requestType = "summary"
	}

	var data any
	switch requestType {
	case "summary":
		data = a.builder.Build(ctx)
	case "telemetry":
		driverNumber := intParam(params["driver_number"], defaultDriverNumber)
		lapNumber := intParam(params["lap_number"], defaultLapNumber)
		data = a.extractor.Extract(ctx, driverNumber, lapNumber)
	default:
		data = map[string]string{"error": fmt.Sprintf("Unknown type: %s", requestType)}
	}

	body, err := json.Marshal(data)
	if err != nil {
		log.Println(errors.Wrap(err, "marshaling response"))
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusInternalServerError, Headers: corsHeaders, Body: `{"error":"encoding failure"}`}, nil
	}

	return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusOK, Headers: corsHeaders, Body: string(body)}, nil
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Panic(err)
	}

	client := openf1.NewClient(cfg.OpenF1BaseURL, reference.SessionKey)
	a := &app{
		builder:   summary.NewBuilder(client),
		extractor: telemetry.NewExtractor(client),
	}

	lambda.Start(a.handle)
}
