package main

import (
	sys "os"
	. "os"
)

func stop(code int) {
	sys.Exit(code)
	Exit(code)
}
