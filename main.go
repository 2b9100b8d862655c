package main

import "github.com/HullComputing/uisnap/cmd"

func main() {
	cmd.Execute()
}
