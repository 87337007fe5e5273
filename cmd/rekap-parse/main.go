package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"jadwalkajian/backend/internal/broadcast"
	"jadwalkajian/backend/internal/broadcast/extract"
)

func main() {
	htmlFlag := flag.Bool("html", false, "treat input as an HTML chat export")
	formatFlag := flag.Bool("format", false, "print only the detected format")
	flag.Parse()

	text, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	if *htmlFlag {
		text, err = extract.TextFromHTML(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "html error: %v\n", err)
			os.Exit(1)
		}
	}

	if *formatFlag {
		fmt.Println(string(broadcast.Detect(text)))
		return
	}

	entries := broadcast.Parse(text)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(entries)
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
