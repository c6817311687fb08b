package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	cloakVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	cloak := NewAppBuild("cloak", "cmd/cloak", cloakVersion)
	cloak.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", cloakVersion).
			CgoEnabled(false)
	})
	cloak.Variant("windows", "amd64")
	cloak.Variant("linux", "amd64")
	cloak.Variant("linux", "arm64")
	cloak.Variant("darwin", "amd64")
	cloak.Variant("darwin", "arm64")
	b.ImportApp(cloak)

	b.Execute()
}
