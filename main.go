package main

import "crypto-buddy/cmd"

func main() {
	cmd.Execute()
}
