package main

import "github.com/promoforge/promoforge/cmd"

func main() {
	cmd.Execute()
}
