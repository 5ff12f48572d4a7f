package main

import "github.com/Darce-One/shanties/cmd"

func main() {
	cmd.Execute()
}
