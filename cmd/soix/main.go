package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
	"github.com/nyan233/soix"
)

var (
	degree         = flag.Int("degree", soix.DefaultDegree, "Branching factor of the tree.")
	shouldSeed     = flag.Bool("seed", false, "Seed the tree using records created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of records to seed the tree with upon startup.")
)

func seedTreeWithTestRecords(t *soix.BTree[string, string]) {
	for i := 0; i < *seedNumRecords; i++ {
		t.Put(faker.Word()+faker.Word(), faker.Word()+faker.Word())
	}
}

func main() {
	flag.Usage = func() {
		fmt.Println("\nsoix CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	tree, err := soix.New[string, string](soix.Config{Degree: *degree})
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	if *shouldSeed {
		seedTreeWithTestRecords(tree)
		color.Cyan("seeded %d records", *seedNumRecords)
	}

	c := &cli{
		scanner:    bufio.NewScanner(os.Stdin),
		tree:       tree,
		visualizer: &soix.Visualizer[string, string]{Tree: tree},
	}
	c.start()
}

type cli struct {
	scanner    *bufio.Scanner
	tree       *soix.BTree[string, string]
	visualizer *soix.Visualizer[string, string]
}

func (c *cli) start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *cli) printHelp() {
	fmt.Print(`
soix CLI

Available Commands:
  SET <key> <val> Insert a key-value pair into the tree
  GET <key>       Retrieve the value for key from the tree
  SCAN <key> <n>  Print up to n pairs in order, starting at key
  MIN             Print the smallest key
  MAX             Print the largest key
  LEN             Print the number of keys
  STAT            Print tree counters
  DUMP            Print the tree level by level
  EXIT            Terminate this session

`)
}

func (c *cli) printPrompt() {
	fmt.Print("> ")
}

func (c *cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	switch command := strings.ToLower(fields[0]); command {
	default:
		color.Red("Unknown command %q", command)
	case "set":
		c.processSet(fields[1:])
	case "get":
		c.processGet(fields[1:])
	case "scan":
		c.processScan(fields[1:])
	case "min":
		c.processMinMax(c.tree.MinKey)
	case "max":
		c.processMinMax(c.tree.MaxKey)
	case "len":
		fmt.Println(c.tree.Len())
	case "stat":
		fmt.Printf("%+v\n", c.tree.Stat())
	case "dump":
		fmt.Print(c.visualizer.Visualize())
	case "exit":
		os.Exit(0)
	}
}

func (c *cli) processSet(args []string) {
	if len(args) != 2 {
		color.Yellow("Usage: SET <key> <value>")
		return
	}
	if old, replaced := c.tree.Put(args[0], args[1]); replaced {
		color.Green("OK (replaced %q)", old)
	} else {
		color.Green("OK")
	}
}

func (c *cli) processGet(args []string) {
	if len(args) != 1 {
		color.Yellow("Usage: GET <key>")
		return
	}
	v, found := c.tree.Get(args[0])
	if !found {
		color.Red("Key not found.")
		return
	}
	fmt.Println(v)
}

func (c *cli) processScan(args []string) {
	if len(args) != 2 {
		color.Yellow("Usage: SCAN <key> <n>")
		return
	}
	n := 0
	if _, err := fmt.Sscanf(args[1], "%d", &n); err != nil || n <= 0 {
		color.Yellow("Usage: SCAN <key> <n>")
		return
	}
	c.tree.Range(args[0], func(k, v string) bool {
		fmt.Printf("%s = %s\n", k, v)
		n--
		return n > 0
	})
}

func (c *cli) processMinMax(fn func() (string, bool)) {
	k, ok := fn()
	if !ok {
		color.Red("Tree is empty.")
		return
	}
	fmt.Println(k)
}
