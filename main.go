package main

import "github.com/krishkalaria12/vitalplan-api/cmd"

func main() {
	cmd.Execute()
}
