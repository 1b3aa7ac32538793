package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/mitumoni-k/HackVita3.0/internal/config"
	"github.com/mitumoni-k/HackVita3.0/internal/container"
	"github.com/mitumoni-k/HackVita3.0/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	cfg, err := config.Load(".")
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to load configuration")
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to build container")
	}
	chiLambda = chiadapter.New(router.New(c.RouterConfig()))
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
