/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"treasury/cmd"
)

func main() {
	cmd.Execute()
}
