package main

import "github.com/nikogura/career-compass/cmd"

func main() {
	cmd.Execute()
}
