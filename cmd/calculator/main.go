package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/zephyrtronium/calculator"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname string
		with            [][2]string
		echo            bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML or TOML config file")
	formatFlags(flag.CommandLine)
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&echo, "echo", false, "print recorded steps after each line")
	flag.Parse()

	cfg := &config{}
	if cfgname != "" {
		c, err := loadConfig(cfgname)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}
	cfg.override(flag.CommandLine)
	opts, err := cfg.options()
	if err != nil {
		log.Fatal(err)
	}

	vars := make(map[string]float64, len(cfg.Variables)+len(with))
	for k, v := range cfg.Variables {
		vars[k] = v
	}
	for _, d := range with {
		nm := d[0]
		vl := d[1]
		r, err := strconv.ParseFloat(vl, 64)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		vars[nm] = r
	}

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		defer f.Close()
		ins = append(ins, f)
	}
	if flag.NArg() > 0 {
		ins = append(ins, strings.NewReader(strings.Join(flag.Args(), "\n")))
	}

	s := newSession(calculator.NewBrain(opts...), vars)
	for _, in := range ins {
		done, err := run(in, os.Stdout, s, echo)
		if err != nil {
			log.Fatal(err)
		}
		if done {
			return
		}
	}
}

// run reads lines of keys from in and prints the displays after each line.
// Invalid keys are reported and the rest of the line is still used. run
// reports whether the user asked to exit.
func run(in io.Reader, out io.Writer, s *session, echo bool) (bool, error) {
	syms := calculator.Symbols()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return true, nil
		}
		keys, err := lexKeys(line, syms).all()
		if err != nil {
			fmt.Fprintln(out, err)
		}
		for _, k := range keys {
			s.press(k)
		}
		if echo {
			fmt.Fprintln(out, s.brain.Steps())
		}
		fmt.Fprintln(out, s.sequence)
		fmt.Fprintln(out, s.display)
		if v := s.variables(); v != "" {
			fmt.Fprintln(out, v)
		}
		fmt.Fprintln(out)
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("reading input: %w", err)
	}
	return false, nil
}

// infile opens the input file. Standard input is returned with a no-op Close.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
