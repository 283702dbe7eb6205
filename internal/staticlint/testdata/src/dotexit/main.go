package main

import . "os"

func main() {
	Exit(3) // want `using os.Exit in main, end the process with logger.Fatal`
}
