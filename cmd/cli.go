package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/lohvht/golithp"
)

var usageReminder = "Usage: ./golithp [script]"

// Run starts the command line process, returning an exit code when the
// process is finished.
func Run() int {
	if len(os.Args) > 2 {
		log.Fatalln(usageReminder)
	} else if len(os.Args) == 2 {
		filename := os.Args[1]
		if filename == "" {
			log.Fatalln(usageReminder)
		}
		b, err := ioutil.ReadFile(filename)
		if err != nil {
			log.Printf("Encountered error opening/reading the file input: %s.\n", filename)
			return 1
		}
		name := filepath.Base(filename)
		if err := runFile(name, string(b)); err != nil {
			log.Print(err.Error())
			return 65
		}
	} else {
		runPrompt()
	}
	return 0
}

// runFile evaluates every expression in input in sequence against one
// Interpreter, printing each result on its own line.
func runFile(name, input string) error {
	interpreter := golithp.New(name)
	results, err := interpreter.EvalAll(input)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Println(r)
	}
	return nil
}
