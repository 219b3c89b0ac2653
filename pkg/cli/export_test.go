package cli

import "github.com/fatih/color"

func init() {
	color.NoColor = true
}

var RunWithWriter = run
