package main

// @title Sales Notes Service API
// @version 1.0
// @description Creates, tracks and renders sales notes.

// @host localhost:8001
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	Execute()
}
