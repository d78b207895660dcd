package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/oktoberfest-api/cmd/app"
)

// @title        Oktoberfest API
// @version      1.0
// @description  Festival activities and ticket orders.
//
// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @BasePath  /api
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
