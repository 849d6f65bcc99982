// Command amara parses an XML document and re-serializes it, normalizing
// markup through the document model. The source may be a file path or an
// http(s) URI; with no argument the document is read from stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lmorillas/amara/dom"
	"github.com/lmorillas/amara/xml"
)

func main() {
	encoding := flag.String("encoding", "", "output encoding (IANA charset name, default UTF-8)")
	timeout := flag.Duration("timeout", 30*time.Second, "network retrieval timeout")
	flag.Parse()

	doc, err := load(flag.Arg(0), *timeout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "amara:", err)
		os.Exit(1)
	}

	if err := dom.Serialize(os.Stdout, doc.AsNode(), *encoding); err != nil {
		fmt.Fprintln(os.Stderr, "amara:", err)
		os.Exit(1)
	}
	fmt.Println()
}

func load(source string, timeout time.Duration) (*dom.Document, error) {
	if source == "" || source == "-" {
		return xml.Parse(os.Stdin)
	}
	loader := xml.NewLoader(xml.WithTimeout(timeout))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return loader.Load(ctx, source)
}
