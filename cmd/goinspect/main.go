package main

import "github.com/dbsmedya/goinspect/cmd/goinspect/cmd"

func main() {
	cmd.Execute()
}
