package main

import (
	"commitlens/cmd"
)

func main() {
	cmd.Execute()
}
