package main

import "dash-launcher/cmd"

func main() {
	cmd.Execute()
}
