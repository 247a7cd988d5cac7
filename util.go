package chomsky

import (
	"log"
)

// assert check exp, if exp == false, log message and exit via log.Fatal
func assert(exp bool, message string) {
	if !exp {
		log.Fatal(message)
	}
}