package main

import "github.com/mouse-blink/peptrace/cmd"

func main() {
	cmd.Execute()
}
