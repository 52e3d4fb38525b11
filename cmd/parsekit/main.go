// Command parsekit orders grammar dependency graphs and prints key hashes.
package main

func main() {
	execute()
}
