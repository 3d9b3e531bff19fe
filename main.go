package main

import "github.com/KaramelBytes/contamstat/cmd"

func main() {
	cmd.Execute()
}
