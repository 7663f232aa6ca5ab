package main

import (
	_ "techmanaus/docs"
	"techmanaus/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           TechManaus Support API
// @version         1.0
// @description     Session-scoped IT support scheduling for TechManaus. All state lives in memory for the lifetime of a session.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SessionID
// @in header
// @name X-Session-ID
// @description Opaque session id returned by POST /v1/sessions.

func main() {
	routes.Run()
}
