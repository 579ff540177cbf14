// Command linkar runs Linkar operations from the shell.
package main

func main() {
	Execute()
}
