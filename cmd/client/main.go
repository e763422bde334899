package main

import "taskpad/cmd/client/cmd"

func main() {
	cmd.Execute()
}
