// Command zones generates zones.go, the lower-case lookup table behind
// loadZone, from the tzdata.zi compact zone source.
package main

import (
	"bufio"
	"fmt"
	"go/format"
	"log"
	"os"
	"regexp"
	"slices"
	"strings"
)

var (
	reZone = regexp.MustCompile(`^Z\s+(\S+)`)
	reLink = regexp.MustCompile(`^L\s+(\S+)\s+(\S+)`)
)

func main() {
	f, err := os.Open("build/tzdata.zi")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	names := make(map[string]string)
	links := make(map[string]string)
	cities := make(map[string]string)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if m := reZone.FindStringSubmatch(line); m != nil {
			zone := m[1]
			names[strings.ToLower(zone)] = zone
			if i := strings.LastIndexByte(zone, '/'); i >= 0 {
				cities[strings.ToLower(zone[i+1:])] = zone
			}
		} else if m := reLink.FindStringSubmatch(line); m != nil {
			links[strings.ToLower(m[2])] = m[1]
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}

	var b strings.Builder
	b.WriteString("// Code generated by build/zones.go; DO NOT EDIT.\n\n")
	b.WriteString("package main\n\n")
	b.WriteString("// zoneNames maps lower-case zone names, links and city names to IANA zones.\n")
	b.WriteString("var zoneNames = map[string]string{\n")
	section := func(title string, entries map[string]string, skip func(string) bool) {
		keys := make([]string, 0, len(entries))
		for k := range entries {
			if skip == nil || !skip(k) {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)
		fmt.Fprintf(&b, "// %s\n", title)
		for _, k := range keys {
			fmt.Fprintf(&b, "%q: %q,\n", k, entries[k])
		}
	}
	section("Zones", names, nil)
	section("Links", links, func(k string) bool { return names[k] != "" })
	section("Cities", cities, func(k string) bool { return names[k] != "" || links[k] != "" })
	b.WriteString("}\n")

	out, err := format.Source([]byte(b.String()))
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("zones.go", out, 0o644); err != nil {
		log.Fatal(err)
	}
}
