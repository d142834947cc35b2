package inventory

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hnrobert/hr/internal/pwhash"
)

// WriteListing prints one aligned line per record. Password fields are
// shown by scheme only.
func WriteListing(w io.Writer, records []UserRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGROUPS\tPASSWORD")
	for _, r := range records {
		groups := strings.Join(r.Groups, ",")
		if groups == "" {
			groups = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, groups, pwhash.Scheme(r.Password))
	}
	return tw.Flush()
}
