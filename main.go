package main

import "vidloop-backend/cmd"

func main() {
	cmd.Run()
}
