package main

import "github.com/shaharia-lab/pushover-mcp/cmd"

func main() {
	cmd.Execute()
}
