package main

import "github.com/matthewmckenna/ios-extract/cmd/ios-extract/cmd"

var (
	version string
	build   string
)

func main() {
	cmd.AppVersion = version
	cmd.AppBuildTime = build
	cmd.Execute()
}
