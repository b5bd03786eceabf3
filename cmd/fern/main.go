// Command fern loads and runs a hand-assembled bytecode Program.
// There is no fern source-language compiler in this repository, so
// this is a thin developer harness: decode a JSON program description
// and either execute it or print its disassembly.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/values"
	"github.com/MysticalUnicat/fern/internal/vm"
	"github.com/MysticalUnicat/fern/internal/vmassemble"
)

var commandAliases = map[string]string{
	"r": "run",
	"d": "disasm",
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "run":
		if len(args) < 2 {
			log.Fatal("usage: fern run <program.json>")
		}
		if err := runCommand(args[1]); err != nil {
			log.Fatalf("fern: %v", err)
		}
	case "disasm":
		if len(args) < 2 {
			log.Fatal("usage: fern disasm <program.json>")
		}
		if err := disasmCommand(args[1]); err != nil {
			log.Fatalf("fern: %v", err)
		}
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "fern: unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: fern <run|disasm> <program.json>")
}

func loadProgram(path string) (*vm.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return vmassemble.Decode(f)
}

func runCommand(path string) error {
	program, err := loadProgram(path)
	if err != nil {
		return err
	}
	// A program's entry point is always its last block, by convention
	// of how vmassemble.Decode lays out a single top-level Program.
	if len(program.Blocks) == 0 {
		return fmt.Errorf("program has no blocks to run")
	}
	entry := uint32(len(program.Blocks) - 1)
	result, err := vm.Run(program, entry)
	if err != nil {
		return err
	}
	fmt.Println(describeBox(result))
	return nil
}

func disasmCommand(path string) error {
	program, err := loadProgram(path)
	if err != nil {
		return err
	}
	for _, line := range program.Disassemble() {
		fmt.Println(line)
	}
	return nil
}

// describeBox is a minimal debug stringifier, not a full textual
// formatter.
func describeBox(b box.Box) string {
	switch {
	case box.IsNumber(b):
		return fmt.Sprintf("%v", box.UnpackNumber(b))
	case box.IsCharacter(b):
		return fmt.Sprintf("%q", box.UnpackCharacter(b))
	case box.IsNothing(b):
		return "·"
	case box.IsArray(b):
		a := values.AsArray(b)
		n := values.NumCells(a)
		parts := make([]string, n)
		for i := int64(0); i < n; i++ {
			parts[i] = describeBox(values.GetCell(a, i))
		}
		return "⟨" + strings.Join(parts, " ") + "⟩"
	case box.IsFunction(b):
		return "<function>"
	case box.IsModifier1(b):
		return "<modifier1>"
	case box.IsModifier2(b):
		return "<modifier2>"
	case box.IsNamespace(b):
		return "<namespace>"
	default:
		return "<value>"
	}
}
