package main

import "github.com/antenmanuuel/pulse-rx-sub001/internal/cli"

func main() {
	cli.Execute()
}
