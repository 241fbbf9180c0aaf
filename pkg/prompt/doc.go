// Package prompt fills a value for a schema tree interactively. A Collector
// walks the tree the way the form layer would render it and asks a Driver
// for each leaf; the default Driver uses survey prompts on the terminal.
package prompt
