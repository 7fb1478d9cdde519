package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/suparena/propinfo"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	spaceFlag   = flag.String("space", "html", "Registry to resolve against (html or svg)")
	normalFlag  = flag.Bool("normalize", false, "Print the normalized form instead of resolving")
)

func main() {
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := propinfo.GetVersionInfo()
		fmt.Printf("propinfo version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: propinfo [-space html|svg] [-normalize] name ...")
		os.Exit(2)
	}

	var registry *propinfo.Schema
	switch propinfo.Space(*spaceFlag) {
	case propinfo.SpaceHTML:
		registry = propinfo.HTML
	case propinfo.SpaceSVG:
		registry = propinfo.SVG
	default:
		fmt.Fprintf(os.Stderr, "propinfo: no merged registry for space %q\n", *spaceFlag)
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, name := range flag.Args() {
		if *normalFlag {
			fmt.Println(propinfo.Normalize(name))
			continue
		}
		if err := enc.Encode(propinfo.Find(registry, name)); err != nil {
			fmt.Fprintf(os.Stderr, "propinfo: %v\n", err)
			os.Exit(1)
		}
	}
}
