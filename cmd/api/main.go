package main

import "furnisure/backend/internal/app"

func main() {
	app.Run()
}
