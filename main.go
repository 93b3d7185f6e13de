package main

import (
	"github.com/ryandward/sgrna-design/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
