package main

import "signalpro/internal/cli"

func main() {
	cli.Execute()
}
