package main

import (
	"github.com/zoyakhan/covidfactors/cmd/covidfactors/cmd"
)

func main() {
	cmd.Execute()
}
