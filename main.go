package main

import "github.com/fabkit-dev/fabkit/cmd"

func main() {
	cmd.Execute()
}
