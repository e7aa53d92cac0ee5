package main

import "github.com/bird-chinese-community/bird2-autotype/cmd"

func main() {
	cmd.Execute()
}
