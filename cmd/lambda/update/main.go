package main

import (
	"plantillas-crud-api/internal/config"
	"plantillas-crud-api/pkg/lambda"
	"plantillas-crud-api/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var container *server.Container

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func main() {
	awslambda.Start(lambda.APIGatewayHandler(container.PlantillaHandler.HandleUpdate))
}
