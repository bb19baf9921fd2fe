package main

import (
	_ "nova_freight/docs"
	"nova_freight/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bid Lifecycle Service API
// @version         1.0
// @description     Freight bid lifecycle (acceptance through delivery) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-Id
// @description Authenticated actor identity resolved by the platform gateway.

func main() {
	routes.Run()
}
