package main

import "github.com/osse101/EmojiKombat_Go/internal/cli"

func main() {
	cli.Execute()
}
