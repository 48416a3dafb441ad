package main

import "campuspay/internal/app/server"

func main() {
	server.Run()
}
