package main

import "wirecodec/cmd/wirec/cmd"

func main() {
	cmd.Execute()
}
