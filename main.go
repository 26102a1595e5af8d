package main

import "github.com/campbellhoskins/chore-bot/internal/cli"

func main() {
	cli.Execute()
}
