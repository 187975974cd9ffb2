package main

import "github.com/rybkr/keymaze/cmd"

func main() {
	cmd.Execute()
}
