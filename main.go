package main

import "txd-manager/cmd"

func main() {
	cmd.Execute()
}
