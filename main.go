package main

import "embedscout/cmd"

func main() {
	cmd.Execute()
}
