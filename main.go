package main

import "github.com/streambinder/spotilink/cmd"

func main() {
	cmd.Execute()
}
