// Command wireconfctl is a thin CLI demonstrating the wireconf core
// against a small built-in registry of demo node classes (tcp, file,
// ws-c). It is not a production endpoint driver.
package main

func main() {
	execute()
}
