package main

import "os"

func main() {
	if len(os.Args) < 2 {
		os.Exit(2) // want `using os.Exit in main, end the process with logger.Fatal`
	}

	cleanup := func() {
		os.Exit(1)
	}
	defer cleanup()

	stop(0)
}
