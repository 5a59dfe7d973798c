// Command desrng draws variates from a Lehmer generator and analyzes multipliers and orbits.
package main

func main() {
	Execute()
}
