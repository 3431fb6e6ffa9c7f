package main

import "github.com/Penguin825/chatlog-search/internal/cmd"

func main() {
	cmd.Execute()
}
