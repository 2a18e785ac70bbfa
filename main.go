package main

import "github.com/nrjohnstone/cctray-jenkins-transport/cmd"

func main() {
	cmd.Execute()
}
