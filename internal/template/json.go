package template

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sigmundgranaas/petty/internal/idf"
	"github.com/sigmundgranaas/petty/internal/perr"
	"github.com/sigmundgranaas/petty/internal/style"
)

// JSONParser compiles the JSON document grammar described in json.go's
// type definitions below into a CompiledTemplate. It is the only
// Parser implementation; the grammar is declarative on purpose
// (spec.md's Non-goal rules out a full template language), but it
// covers every IDF node and inline kind so the rest of the pipeline
// has something real to render.
type JSONParser struct{}

// NewJSONParser returns a ready-to-use JSONParser.
func NewJSONParser() *JSONParser { return &JSONParser{} }

// Parse implements Parser.
func (p *JSONParser) Parse(source string, basePath string) (CompiledTemplate, error) {
	var doc jsonDocument
	if err := json.Unmarshal([]byte(source), &doc); err != nil {
		return nil, perr.Wrap(perr.Configuration, "parse JSON template", err)
	}
	sheet, err := doc.toStylesheet()
	if err != nil {
		return nil, err
	}
	return &JSONTemplate{doc: doc, sheet: sheet, basePath: basePath}, nil
}

// JSONTemplate is the compiled form of a jsonDocument.
type JSONTemplate struct {
	doc      jsonDocument
	sheet    *style.Stylesheet
	basePath string
}

func (t *JSONTemplate) Stylesheet() *style.Stylesheet { return t.sheet }
func (t *JSONTemplate) ResourceBasePath() string      { return t.basePath }
func (t *JSONTemplate) Features() []string            { return t.doc.Features }

// Execute implements CompiledTemplate by walking Body once, binding
// {{field}} tokens and repeat loops against data.
func (t *JSONTemplate) Execute(data any) (*idf.Node, error) {
	children, err := buildChildren(t.doc.Body, data, t.basePath)
	if err != nil {
		return nil, err
	}
	return idf.NewRoot(children...), nil
}

// jsonDocument is the top-level shape of a template source file.
type jsonDocument struct {
	PageMasters       map[string]jsonPageMaster `json:"pageMasters"`
	DefaultPageMaster string                    `json:"defaultPageMaster"`
	Styles            map[string]jsonStyle      `json:"styles"`
	Features          []string                  `json:"features"`
	Body              []json.RawMessage         `json:"body"`
}

type jsonPageMaster struct {
	Size    string      `json:"size"`
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Margins jsonMargins `json:"margins"`
}

type jsonMargins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

func namedPageSize(name string) (style.PageSize, bool) {
	switch strings.ToLower(name) {
	case "a4", "":
		return style.SizeA4, true
	case "letter":
		return style.SizeLetter, true
	case "legal":
		return style.SizeLegal, true
	case "a3":
		return style.SizeA3, true
	case "a5":
		return style.SizeA5, true
	default:
		return style.PageSize{}, false
	}
}

func (d jsonDocument) toStylesheet() (*style.Stylesheet, error) {
	sheet := style.NewStylesheet()
	sheet.PageMasters = map[string]style.PageLayout{}
	for name, pm := range d.PageMasters {
		size, ok := namedPageSize(pm.Size)
		if !ok || strings.EqualFold(pm.Size, "custom") {
			if pm.Width <= 0 || pm.Height <= 0 {
				return nil, perr.New(perr.Configuration, "page master "+name+": custom size requires width and height")
			}
			size = style.CustomSize(pm.Width, pm.Height)
		}
		sheet.PageMasters[name] = style.PageLayout{
			Size: size,
			Margins: style.Margins{
				Top:    pm.Margins.Top,
				Right:  pm.Margins.Right,
				Bottom: pm.Margins.Bottom,
				Left:   pm.Margins.Left,
			},
		}
	}
	if d.DefaultPageMaster != "" {
		sheet.DefaultPageMaster = d.DefaultPageMaster
	} else if len(sheet.PageMasters) > 0 {
		for name := range sheet.PageMasters {
			sheet.DefaultPageMaster = name
			break
		}
	}
	if _, ok := sheet.PageMasters[sheet.DefaultPageMaster]; !ok {
		sheet.PageMasters[sheet.DefaultPageMaster] = style.PageLayout{Size: style.SizeA4, Margins: style.Margins{Top: 72, Right: 72, Bottom: 72, Left: 72}}
	}
	for name, js := range d.Styles {
		sheet.Styles[name] = js.toElementStyle()
	}
	return sheet, nil
}

// jsonStyle is the inline-override / named-class style shorthand:
// string-valued dimensions ("12pt", "50%", "auto") rather than the
// Dimension union, so template authors write plain JSON.
type jsonStyle struct {
	FontFamily      *string  `json:"fontFamily"`
	FontSize        *float64 `json:"fontSize"`
	FontWeight      *string  `json:"fontWeight"`
	FontStyle       *string  `json:"fontStyle"`
	LineHeight      *float64 `json:"lineHeight"`
	TextAlign       *string  `json:"textAlign"`
	Color           *string  `json:"color"`
	BackgroundColor *string  `json:"backgroundColor"`
	Width           *string  `json:"width"`
	Height          *string  `json:"height"`
	MarginTop       *string  `json:"marginTop"`
	MarginRight     *string  `json:"marginRight"`
	MarginBottom    *string  `json:"marginBottom"`
	MarginLeft      *string  `json:"marginLeft"`
	PaddingTop      *string  `json:"paddingTop"`
	PaddingRight    *string  `json:"paddingRight"`
	PaddingBottom   *string  `json:"paddingBottom"`
	PaddingLeft     *string  `json:"paddingLeft"`
	ListStyleType   *string  `json:"listStyleType"`
	FlexDirection   *string  `json:"flexDirection"`
	JustifyContent  *string  `json:"justifyContent"`
	AlignItems      *string  `json:"alignItems"`
}

func parseDimension(s string) style.Dimension {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "auto":
		return style.Auto
	case strings.HasSuffix(s, "%"):
		v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		return style.Percent(v)
	case strings.HasSuffix(s, "pt"):
		v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "pt"), 64)
		return style.Pt(v)
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return style.Auto
		}
		return style.Pt(v)
	}
}

func parseTextAlign(s string) style.TextAlign {
	switch strings.ToLower(s) {
	case "right":
		return style.AlignRight
	case "center":
		return style.AlignCenterText
	case "justify":
		return style.AlignJustify
	default:
		return style.AlignLeft
	}
}

func parseFlexDirection(s string) style.FlexDirection {
	switch strings.ToLower(s) {
	case "row-reverse":
		return style.FlexRowReverse
	case "column":
		return style.FlexColumn
	case "column-reverse":
		return style.FlexColumnReverse
	default:
		return style.FlexRow
	}
}

func parseJustifyContent(s string) style.JustifyContent {
	switch strings.ToLower(s) {
	case "end":
		return style.JustifyEnd
	case "center":
		return style.JustifyCenter
	case "space-between":
		return style.JustifySpaceBetween
	case "space-around":
		return style.JustifySpaceAround
	case "space-evenly":
		return style.JustifySpaceEvenly
	default:
		return style.JustifyStart
	}
}

func parseAlignItems(s string) style.AlignItems {
	switch strings.ToLower(s) {
	case "start":
		return style.AlignStart
	case "end":
		return style.AlignEnd
	case "center":
		return style.AlignCenter
	default:
		return style.AlignStretch
	}
}

func parseListStyleType(s string) style.ListStyleType {
	switch strings.ToLower(s) {
	case "disc":
		return style.ListDisc
	case "circle":
		return style.ListCircle
	case "square":
		return style.ListSquare
	case "decimal":
		return style.ListDecimal
	case "lower-alpha":
		return style.ListLowerAlpha
	case "upper-alpha":
		return style.ListUpperAlpha
	case "lower-roman":
		return style.ListLowerRoman
	case "upper-roman":
		return style.ListUpperRoman
	case "none":
		return style.ListNone
	default:
		return style.ListDisc
	}
}

func (js jsonStyle) toElementStyle() *style.ElementStyle {
	es := &style.ElementStyle{}
	es.FontFamily = js.FontFamily
	es.FontSize = js.FontSize
	es.LineHeight = js.LineHeight
	es.Color = js.Color
	es.BackgroundColor = js.BackgroundColor
	if js.FontWeight != nil {
		w := style.ParseFontWeight(*js.FontWeight)
		es.FontWeight = &w
	}
	if js.FontStyle != nil {
		fs := style.ParseFontStyle(*js.FontStyle)
		es.FontStyle = &fs
	}
	if js.TextAlign != nil {
		a := parseTextAlign(*js.TextAlign)
		es.TextAlign = &a
	}
	if js.Width != nil {
		d := parseDimension(*js.Width)
		es.Width = &d
	}
	if js.Height != nil {
		d := parseDimension(*js.Height)
		es.Height = &d
	}
	assignDim(&es.MarginTop, js.MarginTop)
	assignDim(&es.MarginRight, js.MarginRight)
	assignDim(&es.MarginBottom, js.MarginBottom)
	assignDim(&es.MarginLeft, js.MarginLeft)
	assignDim(&es.PaddingTop, js.PaddingTop)
	assignDim(&es.PaddingRight, js.PaddingRight)
	assignDim(&es.PaddingBottom, js.PaddingBottom)
	assignDim(&es.PaddingLeft, js.PaddingLeft)
	if js.ListStyleType != nil {
		l := parseListStyleType(*js.ListStyleType)
		es.ListStyleType = &l
	}
	if js.FlexDirection != nil {
		f := parseFlexDirection(*js.FlexDirection)
		es.FlexDirection = &f
	}
	if js.JustifyContent != nil {
		j := parseJustifyContent(*js.JustifyContent)
		es.JustifyContent = &j
	}
	if js.AlignItems != nil {
		a := parseAlignItems(*js.AlignItems)
		es.AlignItems = &a
	}
	return es
}

func assignDim(dst **style.Dimension, src *string) {
	if src == nil {
		return
	}
	d := parseDimension(*src)
	*dst = &d
}

// jsonCommon is embedded by every node shape for its shared fields.
type jsonCommon struct {
	Type      string   `json:"type"`
	ID        string   `json:"id"`
	StyleSets []string `json:"styleSets"`
	Style     *jsonStyle `json:"style"`
}

func (c jsonCommon) meta() idf.Metadata {
	m := idf.Metadata{ID: c.ID, StyleSets: c.StyleSets}
	if c.Style != nil {
		m.StyleOverride = c.Style.toElementStyle()
	}
	return m
}

var fieldPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.]+)\s*\}\}`)

// substitute replaces every {{path}} token in s with the stringified
// value looked up against data. A missing path substitutes "".
func substitute(s string, data any) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	return fieldPattern.ReplaceAllStringFunc(s, func(tok string) string {
		path := strings.TrimSpace(tok[2 : len(tok)-2])
		v, ok := lookupPath(data, path)
		if !ok {
			return ""
		}
		return fmt.Sprint(v)
	})
}

// lookupPath resolves a dot-separated path against data, descending
// through map[string]any values at each segment.
func lookupPath(data any, path string) (any, bool) {
	if path == "." || path == "" {
		return data, true
	}
	cur := data
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := m[seg]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// buildChildren expands a list of raw node envelopes into IDF block
// nodes, inlining repeat nodes into however many copies their bound
// array produces.
func buildChildren(raws []json.RawMessage, data any, basePath string) ([]*idf.Node, error) {
	var out []*idf.Node
	for _, raw := range raws {
		var env jsonCommon
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse template node", err)
		}
		if env.Type == "repeat" {
			nodes, err := expandRepeat(raw, data, basePath)
			if err != nil {
				return nil, err
			}
			out = append(out, nodes...)
			continue
		}
		n, err := buildNode(raw, env, data, basePath)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

type jsonRepeat struct {
	Type string          `json:"type"`
	Bind string          `json:"bind"`
	Item json.RawMessage `json:"item"`
}

func expandRepeat(raw json.RawMessage, data any, basePath string) ([]*idf.Node, error) {
	var rep jsonRepeat
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, perr.Wrap(perr.Configuration, "parse repeat node", err)
	}
	v, ok := lookupPath(data, rep.Bind)
	if !ok {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, perr.New(perr.Configuration, "repeat bind "+rep.Bind+" is not an array")
	}
	var out []*idf.Node
	for _, item := range items {
		var env jsonCommon
		if err := json.Unmarshal(rep.Item, &env); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse repeat item", err)
		}
		n, err := buildNode(rep.Item, env, item, basePath)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func buildNode(raw json.RawMessage, env jsonCommon, data any, basePath string) (*idf.Node, error) {
	switch env.Type {
	case "block":
		var n struct {
			jsonCommon
			Children []json.RawMessage `json:"children"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse block node", err)
		}
		children, err := buildChildren(n.Children, data, basePath)
		if err != nil {
			return nil, err
		}
		return idf.NewBlock(env.meta(), children...), nil

	case "paragraph":
		var n struct {
			jsonCommon
			Inlines []json.RawMessage `json:"inlines"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse paragraph node", err)
		}
		inlines, err := buildInlines(n.Inlines, data, basePath)
		if err != nil {
			return nil, err
		}
		return idf.NewParagraph(env.meta(), inlines...), nil

	case "heading":
		var n struct {
			jsonCommon
			Level   int               `json:"level"`
			Inlines []json.RawMessage `json:"inlines"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse heading node", err)
		}
		inlines, err := buildInlines(n.Inlines, data, basePath)
		if err != nil {
			return nil, err
		}
		level := n.Level
		if level <= 0 {
			level = 1
		}
		return &idf.Node{Kind: idf.KindHeading, Meta: env.meta(), Level: level, Inlines: inlines}, nil

	case "image":
		var n struct {
			jsonCommon
			Src string `json:"src"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse image node", err)
		}
		return &idf.Node{Kind: idf.KindImage, Meta: env.meta(), Src: substitute(n.Src, data)}, nil

	case "flex":
		var n struct {
			jsonCommon
			Children []json.RawMessage `json:"children"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse flex node", err)
		}
		children, err := buildChildren(n.Children, data, basePath)
		if err != nil {
			return nil, err
		}
		return &idf.Node{Kind: idf.KindFlexContainer, Meta: env.meta(), Children: children}, nil

	case "list":
		var n struct {
			jsonCommon
			Start *int                `json:"start"`
			Items []json.RawMessage   `json:"items"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse list node", err)
		}
		items, err := buildListItems(n.Items, data, basePath)
		if err != nil {
			return nil, err
		}
		return &idf.Node{Kind: idf.KindList, Meta: env.meta(), Start: n.Start, Children: items}, nil

	case "table":
		return buildTable(raw, env, data, basePath)

	case "pagebreak":
		var n struct {
			jsonCommon
			Master string `json:"master"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse pagebreak node", err)
		}
		return &idf.Node{Kind: idf.KindPageBreak, Meta: env.meta(), MasterName: n.Master}, nil

	case "indexmarker":
		var n struct {
			jsonCommon
			Term string `json:"term"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse indexmarker node", err)
		}
		return &idf.Node{Kind: idf.KindIndexMarker, Meta: env.meta(), Term: substitute(n.Term, data)}, nil

	case "html":
		var n struct {
			jsonCommon
			Source string `json:"source"`
			Src    string `json:"src"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse html node", err)
		}
		html := n.Source
		if html == "" && n.Src != "" {
			loaded, err := loadHTMLFragment(basePath, n.Src)
			if err != nil {
				return nil, err
			}
			html = loaded
		}
		children, err := liftHTML(substitute(html, data))
		if err != nil {
			return nil, err
		}
		return idf.NewBlock(env.meta(), children...), nil

	default:
		return nil, perr.New(perr.Configuration, "unknown template node type: "+env.Type)
	}
}

func buildListItems(raws []json.RawMessage, data any, basePath string) ([]*idf.Node, error) {
	var out []*idf.Node
	for _, raw := range raws {
		var env jsonCommon
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse list item", err)
		}
		if env.Type == "repeat" {
			nodes, err := expandRepeat(raw, data, basePath)
			if err != nil {
				return nil, err
			}
			for _, node := range nodes {
				out = append(out, wrapListItem(env.meta(), node))
			}
			continue
		}
		var n struct {
			jsonCommon
			Children []json.RawMessage `json:"children"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, perr.Wrap(perr.Configuration, "parse list item", err)
		}
		children, err := buildChildren(n.Children, data, basePath)
		if err != nil {
			return nil, err
		}
		out = append(out, &idf.Node{Kind: idf.KindListItem, Meta: env.meta(), Children: children})
	}
	return out, nil
}

func wrapListItem(meta idf.Metadata, child *idf.Node) *idf.Node {
	return &idf.Node{Kind: idf.KindListItem, Meta: meta, Children: []*idf.Node{child}}
}

type jsonColumn struct {
	Width       *string    `json:"width"`
	Style       *jsonStyle `json:"style"`
	HeaderStyle *jsonStyle `json:"headerStyle"`
}

type jsonCell struct {
	StyleSets []string          `json:"styleSets"`
	Style     *jsonStyle        `json:"style"`
	ColSpan   int               `json:"colSpan"`
	RowSpan   int               `json:"rowSpan"`
	Children  []json.RawMessage `json:"children"`
}

func buildTable(raw json.RawMessage, env jsonCommon, data any, basePath string) (*idf.Node, error) {
	var n struct {
		jsonCommon
		Columns []jsonColumn   `json:"columns"`
		Header  [][]jsonCell   `json:"header"`
		Body    [][]jsonCell   `json:"body"`
	}
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, perr.Wrap(perr.Configuration, "parse table node", err)
	}

	var columns []idf.TableColumnDefinition
	for _, c := range n.Columns {
		col := idf.TableColumnDefinition{}
		if c.Width != nil {
			col.Width = &idf.ColumnWidth{}
			s := strings.TrimSpace(*c.Width)
			switch {
			case s == "" || s == "auto":
				col.Width.Kind = idf.ColWidthAuto
			case strings.HasSuffix(s, "%"):
				v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
				col.Width.Kind = idf.ColWidthPercent
				col.Width.Value = v
			default:
				v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "pt"), 64)
				col.Width.Kind = idf.ColWidthPt
				col.Width.Value = v
			}
		}
		if c.Style != nil {
			col.Style = c.Style.toElementStyle()
		}
		if c.HeaderStyle != nil {
			col.HeaderStyle = c.HeaderStyle.toElementStyle()
		}
		columns = append(columns, col)
	}

	header, err := buildTableRows(n.Header, data, basePath)
	if err != nil {
		return nil, err
	}
	body, err := buildTableRows(n.Body, data, basePath)
	if err != nil {
		return nil, err
	}

	return &idf.Node{
		Kind:    idf.KindTable,
		Meta:    env.meta(),
		Columns: columns,
		Header:  &idf.TableHeader{Rows: header},
		Body:    &idf.TableBody{Rows: body},
	}, nil
}

func buildTableRows(rows [][]jsonCell, data any, basePath string) ([]idf.TableRow, error) {
	var out []idf.TableRow
	for _, row := range rows {
		var cells []idf.TableCell
		for _, c := range row {
			children, err := buildChildren(c.Children, data, basePath)
			if err != nil {
				return nil, err
			}
			cell := idf.TableCell{StyleSets: c.StyleSets, Children: children, ColSpan: c.ColSpan, RowSpan: c.RowSpan}
			if cell.ColSpan <= 0 {
				cell.ColSpan = 1
			}
			if cell.RowSpan <= 0 {
				cell.RowSpan = 1
			}
			if c.Style != nil {
				cell.StyleOverride = c.Style.toElementStyle()
			}
			cells = append(cells, cell)
		}
		out = append(out, idf.TableRow{Cells: cells})
	}
	return out, nil
}

type jsonInlineCommon struct {
	Type      string     `json:"type"`
	StyleSets []string   `json:"styleSets"`
	Style     *jsonStyle `json:"style"`
}

func (c jsonInlineCommon) meta() idf.InlineMetadata {
	m := idf.InlineMetadata{StyleSets: c.StyleSets}
	if c.Style != nil {
		m.StyleOverride = c.Style.toElementStyle()
	}
	return m
}

func buildInlines(raws []json.RawMessage, data any, basePath string) ([]idf.InlineNode, error) {
	var out []idf.InlineNode
	for _, raw := range raws {
		n, err := buildInline(raw, data, basePath)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func buildInline(raw json.RawMessage, data any, basePath string) (idf.InlineNode, error) {
	var env jsonInlineCommon
	if err := json.Unmarshal(raw, &env); err != nil {
		return idf.InlineNode{}, perr.Wrap(perr.Configuration, "parse inline node", err)
	}
	switch env.Type {
	case "text", "":
		var n struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return idf.InlineNode{}, perr.Wrap(perr.Configuration, "parse text inline", err)
		}
		return idf.InlineNode{IK: idf.InlineText, Meta: env.meta(), Text: substitute(n.Text, data)}, nil

	case "span":
		var n struct {
			Children []json.RawMessage `json:"children"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return idf.InlineNode{}, perr.Wrap(perr.Configuration, "parse span inline", err)
		}
		children, err := buildInlines(n.Children, data, basePath)
		if err != nil {
			return idf.InlineNode{}, err
		}
		return idf.InlineNode{IK: idf.InlineStyledSpan, Meta: env.meta(), Children: children}, nil

	case "link":
		var n struct {
			Href     string            `json:"href"`
			Children []json.RawMessage `json:"children"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return idf.InlineNode{}, perr.Wrap(perr.Configuration, "parse link inline", err)
		}
		children, err := buildInlines(n.Children, data, basePath)
		if err != nil {
			return idf.InlineNode{}, err
		}
		return idf.InlineNode{IK: idf.InlineHyperlink, Meta: env.meta(), Href: substitute(n.Href, data), Children: children}, nil

	case "pageref":
		var n struct {
			TargetID string            `json:"targetId"`
			Children []json.RawMessage `json:"children"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return idf.InlineNode{}, perr.Wrap(perr.Configuration, "parse pageref inline", err)
		}
		children, err := buildInlines(n.Children, data, basePath)
		if err != nil {
			return idf.InlineNode{}, err
		}
		return idf.InlineNode{IK: idf.InlinePageReference, Meta: env.meta(), TargetID: substitute(n.TargetID, data), Children: children}, nil

	case "image":
		var n struct {
			Src string `json:"src"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return idf.InlineNode{}, perr.Wrap(perr.Configuration, "parse inline image", err)
		}
		return idf.InlineNode{IK: idf.InlineImage, Meta: env.meta(), Src: substitute(n.Src, data)}, nil

	case "br":
		return idf.InlineNode{IK: idf.InlineLineBreak, Meta: env.meta()}, nil

	default:
		return idf.InlineNode{}, perr.New(perr.Configuration, "unknown inline node type: "+env.Type)
	}
}
