package main

import "jobapply_backend/internal/app"

func main() {
	app.Run()
}
