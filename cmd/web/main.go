package main

import "wistara_backend/internal/app"

func main() {
	app.Run()
}
