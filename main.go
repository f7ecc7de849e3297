package main

import (
	"fmt"
	"os"

	"fjacquet/pdf-csv/cmd/categorize"
	"fjacquet/pdf-csv/cmd/convert"
	"fjacquet/pdf-csv/cmd/detect"
	"fjacquet/pdf-csv/cmd/root"
)

func main() {
	root.Init(convert.Cmd, detect.Cmd, categorize.Cmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
