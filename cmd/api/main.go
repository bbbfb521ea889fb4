package main

import (
	_ "loja_virtual/docs"
	"loja_virtual/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Loja Virtual API
// @version         1.0
// @description     Storefront service (cart, freight, checkout and order reconciliation) backed by DynamoDB and PostgreSQL.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	routes.Run()
}
