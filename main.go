package main

import (
	"github.com/Toup95/AgriDetec-test/cmd"
)

func main() {
	cmd.Execute()
}
