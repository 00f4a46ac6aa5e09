package main

import "hr-interview-bot/internal/cli"

func main() {
	cli.Execute()
}
