// facet-raylib renders an interface definition file in a raylib window.
//
// Usage:
//
//	facet-raylib -file ui.txt [-interface name] [-condition c]... [-string k=v]... [-bar n=0.5:4]...
package main

import "facet/internal/app"

func main() {
	app.Run()
}
