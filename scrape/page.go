// Package scrape discovers the named sections of a documentation page:
// anchored headings, their prose, parameter tables and one-of lists.
package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tliron/commonlog"

	"tgschema/schema"
)

var log = commonlog.GetLogger("tgschema.scrape")

// TableRow is one parameter or field row of a section table.
type TableRow struct {
	Name            string
	Type            schema.TypeInfo
	Required        bool
	DescriptionHTML string
}

// Section is one documented object or method: an anchored heading, the
// prose beneath it, and whatever table or one-of list follows.
type Section struct {
	Title           string
	Anchor          string
	DescriptionHTML string
	Rows            []TableRow
	OneOf           []schema.TypeInfo
}

// Page is the scraped documentation page.
type Page struct {
	Sections []Section
}

// Parse discovers the named sections of a documentation page. Headings
// whose title contains whitespace are prose ("Formatting options") and
// are skipped.
func Parse(pageHTML string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	page := &Page{}
	doc.Find("h4").Each(func(_ int, heading *goquery.Selection) {
		title := strings.TrimSpace(heading.Text())
		if title == "" || strings.ContainsAny(title, " \t") {
			log.Debugf("skipping prose heading %q", title)
			return
		}
		sec := Section{Title: title, Anchor: anchorOf(heading, title)}
		var oneOf []schema.TypeInfo

	siblings:
		for sib := heading.Next(); sib.Length() > 0; sib = sib.Next() {
			switch goquery.NodeName(sib) {
			case "h3", "h4":
				break siblings
			case "p", "blockquote":
				if markup, err := goquery.OuterHtml(sib); err == nil {
					sec.DescriptionHTML += markup
				}
			case "table":
				if sec.Rows == nil {
					sec.Rows = parseTable(sib)
				}
			case "ul":
				oneOf = append(oneOf, parseOneOfList(sib)...)
			}
		}
		// A list of type links only stands for a union when the
		// section has no table of its own; link lists in a method's
		// prose are not variants.
		if sec.Rows == nil {
			sec.OneOf = oneOf
		}
		page.Sections = append(page.Sections, sec)
	})
	return page, nil
}

// anchorOf finds the fragment identifier of a heading. The page marks
// headings with an empty named anchor; the title is the fallback.
func anchorOf(heading *goquery.Selection, title string) string {
	a := heading.Find("a").First()
	if name, ok := a.Attr("name"); ok && name != "" {
		return "#" + name
	}
	if href, ok := a.Attr("href"); ok && strings.HasPrefix(href, "#") {
		return href
	}
	return "#" + strings.ToLower(title)
}

func parseTable(table *goquery.Selection) []TableRow {
	headers := table.Find("thead th, tr th").Map(func(_ int, th *goquery.Selection) string {
		return strings.TrimSpace(th.Text())
	})
	columns := len(headers)

	var rows []TableRow
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 3 {
			return
		}
		row := TableRow{
			Name: strings.TrimSpace(cells.Eq(0).Text()),
			Type: typeInfoOf(cells.Eq(1)),
		}
		switch {
		case columns >= 4 || cells.Length() >= 4:
			// Method tables: Parameter, Type, Required, Description.
			row.Required = strings.TrimSpace(cells.Eq(2).Text()) == "Yes"
			row.DescriptionHTML = innerHTML(cells.Eq(3))
		default:
			// Object tables: Field, Type, Description. Optional fields
			// announce themselves in the description.
			desc := cells.Eq(2)
			row.Required = !strings.HasPrefix(strings.TrimSpace(desc.Text()), "Optional")
			row.DescriptionHTML = innerHTML(desc)
		}
		rows = append(rows, row)
	})
	return rows
}

// parseOneOfList reads a bullet list of type links, the page's way of
// writing "one of the following" unions.
func parseOneOfList(ul *goquery.Selection) []schema.TypeInfo {
	var infos []schema.TypeInfo
	ul.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		info := typeInfoOf(li)
		if info.Text == "" || len(info.Links) == 0 {
			return
		}
		infos = append(infos, info)
	})
	return infos
}

func typeInfoOf(cell *goquery.Selection) schema.TypeInfo {
	info := schema.TypeInfo{Text: strings.TrimSpace(cell.Text())}
	cell.Find("a").Each(func(_ int, a *goquery.Selection) {
		text := strings.TrimSpace(a.Text())
		if text == "" {
			return
		}
		href, _ := a.Attr("href")
		info.Links = append(info.Links, schema.TypeLink{Text: text, Href: href})
	})
	return info
}

func innerHTML(sel *goquery.Selection) string {
	markup, err := sel.Html()
	if err != nil {
		return ""
	}
	return markup
}
