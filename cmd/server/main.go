package main

import "vacations/internal/app/server"

func main() {
	server.Run()
}
