package main

import (
	"m2t/cmd/m2t/cmd"
)

func main() {
	cmd.Execute()
}
