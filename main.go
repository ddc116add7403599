/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/samwightt/gqlhover/cmd"

func main() {
	cmd.Execute()
}
