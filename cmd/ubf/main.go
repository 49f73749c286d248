// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"iter"
	"log"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	ubfio "github.com/ezrec/ubf/io"
	"github.com/ezrec/ubf/machine"
	"github.com/ezrec/ubf/program"
	"github.com/ezrec/ubf/repl"
)

func main() {
	var run string
	var eval string
	var expand bool
	var input string
	var output string
	var cells uint
	var verbose bool

	flag.StringVar(&run, "c", "", ".b program file to run")
	flag.StringVar(&eval, "e", "", "program text to run")
	flag.BoolVar(&expand, "x", false, "enable $(...) repeat expansion")
	flag.StringVar(&input, "i", "-", "program input")
	flag.StringVar(&output, "o", "-", "program output")
	flag.UintVar(&cells, "n", machine.DEFAULT_CELLS, "tape size, in cells")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	text := eval

	// Load a program file.
	if len(run) != 0 {
		inf, err := os.Open(run)
		if err != nil {
			log.Fatalf("%v: %v", run, err)
		}
		text, err = program.Load(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", run, err)
		}
	}

	if expand {
		var err error
		text, err = program.Expand(text)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	session := repl.NewSession(cells)
	session.Verbose = verbose

	if input == "-" {
		session.Machine.Input = &ubfio.ReaderSource{Input: os.Stdin}
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		session.Machine.Input = &ubfio.ReaderSource{Input: inf}
	}

	if output == "-" {
		session.Machine.Output = &ubfio.WriterSink{Output: os.Stdout}
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		session.Machine.Output = &ubfio.WriterSink{Output: ouf}
	}

	if len(run) != 0 || len(eval) != 0 {
		res, err := session.Eval(text)
		if err != nil {
			log.Fatal(err)
		}
		if res.Outcome != machine.OUTCOME_FINISHED {
			log.Fatalf("%v", res.Outcome)
		}
		return
	}

	runREPL(session, expand)
}

// runREPL feeds interactive lines into the session until end of input or
// the session closes.
func runREPL(session *repl.Session, expand bool) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".ubf_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	for res, err := range session.Run(replLines(rl, expand)) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else if res.Outcome != machine.OUTCOME_FINISHED {
			fmt.Fprintf(os.Stderr, "%v\n", res.Outcome)
		}
	}
}

// replLines yields readline input, one invocation per line.
func replLines(rl *readline.Instance, expand bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				return
			}
			if line == "" {
				continue
			}
			if expand {
				line, err = program.Expand(line)
				if err != nil {
					fmt.Fprintf(os.Stderr, "error: %v\n", err)
					continue
				}
			}
			if !yield(line) {
				return
			}
		}
	}
}
