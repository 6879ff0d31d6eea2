package config

import (
	"flag"
	"strings"
	"time"
)

// applyFlags overlays Config fields from command-line flags:
//
//	-u string   URL of the employee collection resource
//	-s int      records per page
//	-e string   directory for fallback exports
//	-t int      request timeout in seconds
//
// Args are filtered to the flags owned here so flag sets defined elsewhere
// (like -c/-config) do not interfere.
func (c *Config) applyFlags(args []string) error {
	args = filterArgs(args, []string{"-u", "-s", "-e", "-t"})

	fs := flag.NewFlagSet("staffdir", flag.ContinueOnError)
	fs.StringVar(&c.ResourceURL, "u", c.ResourceURL, "URL of the employee collection resource")
	size := fs.Int("s", c.PageSize, "records per page")
	fs.StringVar(&c.ExportDir, "e", c.ExportDir, "directory for fallback exports")
	timeout := fs.Int("t", int(c.RequestTimeout.Seconds()), "request timeout in seconds")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *size > 0 {
		c.PageSize = *size
	}
	if *timeout > 0 {
		c.RequestTimeout = time.Duration(*timeout) * time.Second
	}
	return nil
}

// filterArgs keeps only the allowed flags and their values. Both the
// "-f value" and "-f=value" spellings are supported.
func filterArgs(args, allowed []string) []string {
	keep := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		keep[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if eq := strings.IndexByte(arg, '='); eq > 0 {
			if keep[arg[:eq]] {
				out = append(out, arg)
			}
			continue
		}
		if keep[arg] {
			out = append(out, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				out = append(out, args[i+1])
				i++
			}
		}
	}
	return out
}
