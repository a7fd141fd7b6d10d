package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Gallery API
// @version         0.1.0
// @description     Curated art collections backed by the Met Museum catalog.
// @host            localhost:5000
// @BasePath        /
// @schemes         http
