// +build ignore

// Command gentextcodec generates the encoding package's CJK index
// tables (JIS0208, JIS0212, Big5, EUC-KR, GB18030 and the GB18030
// ranges) from the WHATWG Encoding Standard's index files. The
// checked-in CJK tables_*.go files are a curated, hand-reduced subset
// of its output (see each file's banner comment); the Windows-1251 and
// Windows-1252 tables are hand-populated and not produced here.
//
//	go run cmd/gentextcodec/main.go | gofmt > encoding/tables_generated.go
//
// Grounded in golang-text/encoding/charmap's maketables.go (the
// fetch-parse-emit shape) and original_source's gb18030_gen.c (the
// ranges-table piecewise-interpolation logic for GB18030's four-byte
// form).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
)

var tables = []struct {
	name    string // Go identifier suffix, e.g. "JIS0208"
	url     string
	pointerWidth int // number of codepoint slots per lead byte row, 0 for ranges files
}{
	{"JIS0208", "https://encoding.spec.whatwg.org/index-jis0208.txt", 94},
	{"JIS0212", "https://encoding.spec.whatwg.org/index-jis0212.txt", 94},
	{"Big5", "https://encoding.spec.whatwg.org/index-big5.txt", 157},
	{"EUCKR", "https://encoding.spec.whatwg.org/index-euc-kr.txt", 190},
	{"GB18030", "https://encoding.spec.whatwg.org/index-gb18030.txt", 190},
}

// indexEntry is one non-comment line of a WHATWG index file: "pointer
// codepoint", e.g. "1133 0x4E82".
type indexEntry struct {
	pointer int
	cp      int
}

func fetchIndex(url string) ([]indexEntry, error) {
	resp, err := http.Get(url) //nolint:gosec,noctx
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entries []indexEntry
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pointer, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		cpStr := strings.TrimPrefix(fields[1], "0x")
		cp, err := strconv.ParseInt(cpStr, 16, 32)
		if err != nil {
			continue
		}
		entries = append(entries, indexEntry{pointer: pointer, cp: int(cp)})
	}
	return entries, scanner.Err()
}

func emitDecodeTable(w *bufio.Writer, goName string, entries []indexEntry, size int) {
	fmt.Fprintf(w, "var %sDecodeTable = [%d]Codepoint{\n", goName, size)
	for _, e := range entries {
		fmt.Fprintf(w, "\t%d: 0x%04X,\n", e.pointer, e.cp)
	}
	fmt.Fprintf(w, "}\n\n")
}

func emitEncodeTable(w *bufio.Writer, goName string, entries []indexEntry) {
	sorted := append([]indexEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].cp != sorted[j].cp {
			return sorted[i].cp < sorted[j].cp
		}
		return sorted[i].pointer < sorted[j].pointer
	})

	fmt.Fprintf(w, "var %sEncodeTable = []pointerEncodeEntry{\n", goName)
	lastCP := -1
	for _, e := range sorted {
		if e.cp == lastCP {
			continue // lowest-pointer entry for a codepoint wins ties
		}
		lastCP = e.cp
		fmt.Fprintf(w, "\t{codepoint: 0x%04X, pointer: %d},\n", e.cp, e.pointer)
	}
	fmt.Fprintf(w, "}\n\n")
}

func main() {
	out := flag.String("out", "", "write to this file instead of stdout")
	flag.Parse()

	w := bufio.NewWriter(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = bufio.NewWriter(f)
	}
	defer w.Flush()

	fmt.Fprintln(w, "// Code generated by cmd/gentextcodec. DO NOT EDIT.")
	fmt.Fprintln(w, "package encoding")
	fmt.Fprintln(w)

	for _, t := range tables {
		entries, err := fetchIndex(t.url)
		if err != nil {
			log.Fatalf("fetching %s: %v", t.url, err)
		}

		maxPointer := 0
		for _, e := range entries {
			if e.pointer > maxPointer {
				maxPointer = e.pointer
			}
		}

		emitDecodeTable(w, t.name, entries, maxPointer+1)
		emitEncodeTable(w, t.name, entries)
	}

	if err := emitGB18030Ranges(w); err != nil {
		log.Fatal(err)
	}
}

// emitGB18030Ranges fetches the GB18030 ranges file (which, unlike
// the two-byte index files, maps a pointer directly to a codepoint at
// the *start* of a piecewise-linear run rather than one pointer per
// codepoint) and emits the gb18030Ranges table, grounded in
// gb18030_gen.c's own parse of the same file.
func emitGB18030Ranges(w *bufio.Writer) error {
	entries, err := fetchIndex("https://encoding.spec.whatwg.org/index-gb18030-ranges.txt")
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].pointer < entries[j].pointer })

	fmt.Fprintln(w, "var gb18030Ranges = []gb18030Range{")
	for _, e := range entries {
		fmt.Fprintf(w, "\t{pointer: %d, codepoint: 0x%04X},\n", e.pointer, e.cp)
	}
	fmt.Fprintln(w, "}")
	return nil
}
