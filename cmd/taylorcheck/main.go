// Command taylorcheck is a demo/test harness for the semantic core: it
// type-checks named fixture programs (the built-in end-to-end scenarios,
// plus anything testsupport registers) and reports diagnostics.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/taylorlang/semantic/internal/checker"
	"github.com/taylorlang/semantic/internal/config"
	"github.com/taylorlang/semantic/testsupport"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		configPath  = flag.String("config", "taylorcheck.yaml", "Path to config file")
		algoFlag    = flag.Bool("algorithmic", false, "Use the algorithmic checking strategy instead of constraint-based")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("taylorcheck %s\n", bold("dev"))
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	if !cfg.Color {
		color.NoColor = true
	}

	strategy := checker.ConstraintBased
	if *algoFlag || cfg.Strategy == "algorithmic" {
		strategy = checker.Algorithmic
	}

	switch flag.Arg(0) {
	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing fixture name\n", red("Error"))
			os.Exit(1)
		}
		if !checkFixture(flag.Arg(1), strategy, cfg.Verbose) {
			os.Exit(1)
		}
	case "check-all":
		if !checkAll(strategy, cfg.Verbose) {
			os.Exit(1)
		}
	case "validate":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing fixture name\n", red("Error"))
			os.Exit(1)
		}
		validateFixture(flag.Arg(1))
	case "repl":
		runREPL(strategy)
	case "list":
		for _, f := range testsupport.All() {
			fmt.Printf("%s  %s\n", cyan(f.Name), f.Description)
		}
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(bold("taylorcheck - TaylorLang semantic analysis harness"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  taylorcheck <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <name>   Type-check a named fixture\n", cyan("check"))
	fmt.Printf("  %s         Type-check every registered fixture\n", cyan("check-all"))
	fmt.Printf("  %s <name> Type-check a fixture (default strategy) and report its item count\n", cyan("validate"))
	fmt.Printf("  %s           Interactive fixture picker\n", cyan("repl"))
	fmt.Printf("  %s           List every registered fixture\n", cyan("list"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --config <path>   Load a TaylorcheckConfig YAML file")
	fmt.Println("  --algorithmic     Use the algorithmic checking strategy")
}

func checkFixture(name string, strategy checker.Strategy, verbose bool) bool {
	fx, found := testsupport.Lookup(name)
	if !found {
		fmt.Fprintf(os.Stderr, "%s: no such fixture %q\n", red("Error"), name)
		return false
	}
	if verbose {
		fmt.Printf("%s checking %s\n", cyan("->"), fx.Name)
	}
	ck := &checker.Checker{Strategy: strategy}
	_, diag := ck.TypeCheck(fx.Program)
	if diag == nil {
		fmt.Printf("%s %s\n", green("OK"), fx.Name)
		return true
	}
	printDiagnostic(fx.Name, diag)
	return false
}

func checkAll(strategy checker.Strategy, verbose bool) bool {
	allOK := true
	for _, fx := range testsupport.All() {
		if !checkFixture(fx.Name, strategy, verbose) {
			allOK = false
		}
	}
	return allOK
}

func validateFixture(name string) {
	fx, found := testsupport.Lookup(name)
	if !found {
		fmt.Fprintf(os.Stderr, "%s: no such fixture %q\n", red("Error"), name)
		os.Exit(1)
	}
	ck := checker.New()
	typed, diag := ck.TypeCheck(fx.Program)
	if diag != nil {
		printDiagnostic(fx.Name, diag)
		os.Exit(1)
	}
	fmt.Printf("%s %s type-checked with %d item(s)\n", green("OK"), fx.Name, len(typed.Items))
}

func printDiagnostic(fixture string, d interface{ Error() string }) {
	fmt.Printf("%s %s: %s\n", red("FAIL"), fixture, d.Error())
}

func runREPL(strategy checker.Strategy) {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := filepath.Join(os.TempDir(), ".taylorcheck_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	names := testsupport.Names()
	sort.Strings(names)
	line.SetCompleter(func(prefix string) (c []string) {
		for _, n := range names {
			if strings.HasPrefix(n, prefix) {
				c = append(c, n)
			}
		}
		return
	})

	fmt.Println(bold("taylorcheck repl"))
	fmt.Println("Type a fixture name to check it, :list to list fixtures, :quit to exit.")

	for {
		input, err := line.Prompt("taylorcheck> ")
		if err == io.EOF {
			fmt.Println(green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		line.AppendHistory(input)

		switch {
		case input == "":
			continue
		case input == ":quit":
			fmt.Println(green("Goodbye!"))
			if f, err := os.Create(historyFile); err == nil {
				_, _ = line.WriteHistory(f)
				f.Close()
			}
			return
		case input == ":list":
			for _, n := range names {
				fmt.Printf("  %s\n", cyan(n))
			}
		default:
			checkFixture(input, strategy, false)
		}
	}
}
