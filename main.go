package main

import "github.com/mouse-blink/sqlporter/cmd"

func main() {
	cmd.Execute()
}
