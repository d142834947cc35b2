package inventory

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/hnrobert/hr/internal/pwhash"
)

var reportMarkdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// WriteReport renders records as a standalone HTML page with an account
// table and a group table. Password hashes are never included.
func WriteReport(w io.Writer, title string, records []UserRecord) error {
	var body bytes.Buffer
	if err := reportMarkdown.Convert(ReportMarkdown(title, records), &body); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(title), body.String())
	return err
}

// ReportMarkdown is the markdown source WriteReport renders.
func ReportMarkdown(title string, records []UserRecord) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", mdEscape(title))

	order, members := groupIndex(records)
	fmt.Fprintf(&b, "%d accounts, %d groups.\n\n", len(records), len(order))

	b.WriteString("## Accounts\n\n")
	b.WriteString("| Name | Groups | Password |\n|---|---|---|\n")
	for _, r := range records {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", mdEscape(r.Name), mdList(r.Groups), pwhash.Scheme(r.Password))
	}

	if len(order) > 0 {
		b.WriteString("\n## Groups\n\n")
		b.WriteString("| Group | Members |\n|---|---|\n")
		for _, g := range order {
			fmt.Fprintf(&b, "| %s | %s |\n", mdEscape(g), mdList(members[g]))
		}
	}
	return b.Bytes()
}

// groupIndex inverts the records into group -> member names, keeping the
// order in which groups and members first appear.
func groupIndex(records []UserRecord) ([]string, map[string][]string) {
	var order []string
	members := map[string][]string{}
	for _, r := range records {
		for _, g := range r.Groups {
			if _, ok := members[g]; !ok {
				order = append(order, g)
			}
			members[g] = append(members[g], r.Name)
		}
	}
	return order, members
}

func mdList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	esc := make([]string, len(items))
	for i, s := range items {
		esc[i] = mdEscape(s)
	}
	return strings.Join(esc, ", ")
}

// mdEscape backslash-escapes ASCII punctuation so account names render
// literally and cannot break the table.
func mdEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' {
			r = ' '
		}
		if r < 0x80 && strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
