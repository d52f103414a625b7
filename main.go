package main

import "bucket-manager/cmd"

func main() {
	cmd.Execute()
}
