package page

import "strings"

// TableStyle holds the colors applied by RestyleTable.
type TableStyle struct {
	HeaderColor         string
	HeaderBackground    string
	SubheaderColor      string
	SubheaderBackground string
}

// DefaultTableStyle returns the stock header and sub-header colors.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		HeaderColor:         "#ffffff",
		HeaderBackground:    "#4b4945",
		SubheaderColor:      "#000000",
		SubheaderBackground: "#a391b1",
	}
}

const (
	tableDeclarations = "border-collapse: collapse; width: 100%; border-color: black; border-style: solid;"
	cellDeclarations  = "vertical-align: top"
)

// Declarations builds an inline style value from the non-empty properties.
func Declarations(color, background, textAlign, verticalAlign string) string {
	var parts []string
	add := func(property, value string) {
		if value != "" {
			parts = append(parts, property+": "+value+";")
		}
	}
	add("color", color)
	add("background-color", background)
	add("text-align", textAlign)
	add("vertical-align", verticalAlign)
	return strings.Join(parts, " ")
}

func (s TableStyle) header() string {
	return Declarations(s.HeaderColor, s.HeaderBackground, "left", "top")
}

func (s TableStyle) subheader() string {
	return Declarations(s.SubheaderColor, s.SubheaderBackground, "", "")
}

// styleOpenings adds declarations to every opening of tag on the line.
// With bareOnly set, openings that already carry attributes are left alone.
// An existing style attribute is extended rather than duplicated.
func styleOpenings(line, tag, declarations string, bareOnly bool) string {
	if declarations == "" {
		return line
	}
	open := "<" + tag
	var builder strings.Builder
	for i := 0; i < len(line); {
		rest := line[i:]
		if !isOpening(rest, open, true) {
			builder.WriteByte(line[i])
			i++
			continue
		}
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			builder.WriteString(rest)
			break
		}
		element := rest[:end+1]
		builder.WriteString(styleElement(element, open, declarations, bareOnly))
		i += end + 1
	}
	return builder.String()
}

func styleElement(element, open, declarations string, bareOnly bool) string {
	if element == open+">" {
		return open + ` style="` + declarations + `">`
	}
	if bareOnly {
		return element
	}
	if at := strings.Index(element, `style="`); at >= 0 {
		insert := at + len(`style="`)
		return element[:insert] + declarations + " " + element[insert:]
	}
	closer := ">"
	body := strings.TrimSuffix(element, ">")
	if strings.HasSuffix(body, "/") {
		body = strings.TrimSuffix(body, "/")
		closer = "/>"
	}
	return strings.TrimRight(body, " ") + ` style="` + declarations + `"` + closer
}
