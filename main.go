package main

import "randomwalk/cli"

func main() {
	cli.Execute()
}
