package main

import "noteshare/cmd/client/cmd"

func main() {
	cmd.Execute()
}
