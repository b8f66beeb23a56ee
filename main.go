package main

import "github.com/jmhart/mdlite/cmd"

func main() {
	cmd.Execute()
}
