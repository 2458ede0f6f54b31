package main

import "github.com/altcast/lightaudit/cmd"

// execCmd is indirected for testing.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
