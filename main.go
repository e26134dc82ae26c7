package main

import "github.com/frahmantamala/donation-platform/cmd"

func main() {
	cmd.Execute()
}
