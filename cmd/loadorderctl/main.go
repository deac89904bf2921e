// Command loadorderctl is a demonstration front end for the LoadOrder
// engine: it wires a profile, a prober, and a default plugin validator
// together and exposes the engine's operations as subcommands.
package main

func main() {
	Execute()
}
