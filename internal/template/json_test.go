package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmundgranaas/petty/internal/idf"
	"github.com/sigmundgranaas/petty/internal/style"
)

func TestJSONParserBuildsStylesheetFromPageMastersAndStyles(t *testing.T) {
	src := `{
		"defaultPageMaster": "letter",
		"pageMasters": {"letter": {"size": "letter", "margins": {"top": 36, "right": 36, "bottom": 36, "left": 36}}},
		"styles": {"title": {"fontSize": 24, "fontWeight": "bold"}},
		"body": []
	}`

	tmpl, err := NewJSONParser().Parse(src, "/docs")
	require.NoError(t, err)

	sheet := tmpl.Stylesheet()
	assert.Equal(t, "letter", sheet.DefaultPageMaster)
	master, ok := sheet.PageMasters["letter"]
	require.True(t, ok)
	assert.Equal(t, style.SizeLetter, master.Size)
	assert.Equal(t, 36.0, master.Margins.Top)

	titleStyle, ok := sheet.Styles["title"]
	require.True(t, ok)
	require.NotNil(t, titleStyle.FontSize)
	assert.Equal(t, 24.0, *titleStyle.FontSize)
	require.NotNil(t, titleStyle.FontWeight)
	assert.True(t, titleStyle.FontWeight.IsBold())

	assert.Equal(t, "/docs", tmpl.ResourceBasePath())
}

func TestJSONParserDefaultsToA4WhenNoPageMastersGiven(t *testing.T) {
	tmpl, err := NewJSONParser().Parse(`{"body": []}`, "")
	require.NoError(t, err)

	sheet := tmpl.Stylesheet()
	require.NotEmpty(t, sheet.DefaultPageMaster)
	master, ok := sheet.PageMasters[sheet.DefaultPageMaster]
	require.True(t, ok)
	assert.Equal(t, style.SizeA4, master.Size)
}

func TestJSONParserRejectsCustomPageMasterMissingDimensions(t *testing.T) {
	src := `{"pageMasters": {"weird": {"size": "custom"}}, "body": []}`
	_, err := NewJSONParser().Parse(src, "")
	assert.Error(t, err)
}

func TestJSONTemplateExecuteSubstitutesFields(t *testing.T) {
	src := `{"body": [
		{"type": "paragraph", "inlines": [{"type": "text", "text": "Hello {{name}}"}]}
	]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	root, err := tmpl.Execute(map[string]any{"name": "Ada"})
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	para := root.Children[0]
	assert.Equal(t, idf.KindParagraph, para.Kind)
	require.Len(t, para.Inlines, 1)
	assert.Equal(t, "Hello Ada", para.Inlines[0].Text)
}

func TestJSONTemplateExecuteSubstitutesNestedDotPath(t *testing.T) {
	src := `{"body": [
		{"type": "paragraph", "inlines": [{"type": "text", "text": "{{customer.name}} owes {{customer.balance}}"}]}
	]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	data := map[string]any{"customer": map[string]any{"name": "Acme", "balance": "$10"}}
	root, err := tmpl.Execute(data)
	require.NoError(t, err)
	assert.Equal(t, "Acme owes $10", root.Children[0].Inlines[0].Text)
}

func TestJSONTemplateExecuteMissingFieldSubstitutesEmpty(t *testing.T) {
	src := `{"body": [{"type": "paragraph", "inlines": [{"type": "text", "text": "[{{missing}}]"}]}]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	root, err := tmpl.Execute(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "[]", root.Children[0].Inlines[0].Text)
}

func TestJSONTemplateRepeatExpandsOneNodePerItem(t *testing.T) {
	src := `{"body": [
		{"type": "repeat", "bind": "items", "item": {
			"type": "paragraph", "inlines": [{"type": "text", "text": "{{label}}"}]
		}}
	]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	data := map[string]any{"items": []any{
		map[string]any{"label": "one"},
		map[string]any{"label": "two"},
		map[string]any{"label": "three"},
	}}
	root, err := tmpl.Execute(data)
	require.NoError(t, err)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "one", root.Children[0].Inlines[0].Text)
	assert.Equal(t, "two", root.Children[1].Inlines[0].Text)
	assert.Equal(t, "three", root.Children[2].Inlines[0].Text)
}

func TestJSONTemplateRepeatWithUnboundFieldProducesNoNodes(t *testing.T) {
	src := `{"body": [
		{"type": "repeat", "bind": "items", "item": {"type": "paragraph", "inlines": []}}
	]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	root, err := tmpl.Execute(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, root.Children)
}

func TestJSONTemplateRepeatWithNonArrayBindReturnsError(t *testing.T) {
	src := `{"body": [{"type": "repeat", "bind": "items", "item": {"type": "paragraph", "inlines": []}}]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	_, err = tmpl.Execute(map[string]any{"items": "not an array"})
	assert.Error(t, err)
}

func TestJSONTemplateHeadingLevelDefaultsToOne(t *testing.T) {
	src := `{"body": [{"type": "heading", "inlines": [{"type": "text", "text": "Title"}]}]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	root, err := tmpl.Execute(nil)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, idf.KindHeading, root.Children[0].Kind)
	assert.Equal(t, 1, root.Children[0].Level)
}

func TestJSONTemplateListBuildsListItems(t *testing.T) {
	src := `{"body": [
		{"type": "list", "items": [
			{"type": "listitem", "children": [{"type": "paragraph", "inlines": [{"type": "text", "text": "a"}]}]},
			{"type": "listitem", "children": [{"type": "paragraph", "inlines": [{"type": "text", "text": "b"}]}]}
		]}
	]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	root, err := tmpl.Execute(nil)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	list := root.Children[0]
	assert.Equal(t, idf.KindList, list.Kind)
	require.Len(t, list.Children, 2)
	assert.Equal(t, idf.KindListItem, list.Children[0].Kind)
}

func TestJSONTemplateTableBuildsColumnsHeaderAndBody(t *testing.T) {
	src := `{"body": [
		{"type": "table",
		 "columns": [{"width": "50%"}, {"width": "120pt"}, {}],
		 "header": [[
			{"children": [{"type": "paragraph", "inlines": [{"type": "text", "text": "Name"}]}]},
			{"children": [{"type": "paragraph", "inlines": [{"type": "text", "text": "Amount"}]}]},
			{"children": []}
		 ]],
		 "body": [[
			{"children": [{"type": "paragraph", "inlines": [{"type": "text", "text": "Widget"}]}]},
			{"children": [{"type": "paragraph", "inlines": [{"type": "text", "text": "$5"}]}]},
			{"children": [], "colSpan": 2}
		 ]]
		}
	]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	root, err := tmpl.Execute(nil)
	require.NoError(t, err)
	table := root.Children[0]
	assert.Equal(t, idf.KindTable, table.Kind)
	require.Len(t, table.Columns, 3)
	require.NotNil(t, table.Columns[0].Width)
	assert.Equal(t, idf.ColWidthPercent, table.Columns[0].Width.Kind)
	assert.Equal(t, 50.0, table.Columns[0].Width.Value)
	require.NotNil(t, table.Columns[1].Width)
	assert.Equal(t, idf.ColWidthPt, table.Columns[1].Width.Kind)
	assert.Equal(t, 120.0, table.Columns[1].Width.Value)
	assert.Nil(t, table.Columns[2].Width)

	require.NotNil(t, table.Header)
	require.Len(t, table.Header.Rows, 1)
	require.NotNil(t, table.Body)
	require.Len(t, table.Body.Rows, 1)
	lastCell := table.Body.Rows[0].Cells[2]
	assert.Equal(t, 2, lastCell.ColSpan)
	assert.Equal(t, 1, lastCell.RowSpan)
}

func TestJSONTemplatePageBreakAndIndexMarker(t *testing.T) {
	src := `{"body": [
		{"type": "pagebreak", "master": "landscape"},
		{"type": "indexmarker", "term": "{{term}}"}
	]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	root, err := tmpl.Execute(map[string]any{"term": "glossary"})
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	assert.Equal(t, idf.KindPageBreak, root.Children[0].Kind)
	assert.Equal(t, "landscape", root.Children[0].MasterName)
	assert.Equal(t, idf.KindIndexMarker, root.Children[1].Kind)
	assert.Equal(t, "glossary", root.Children[1].Term)
}

func TestJSONTemplateUnknownNodeTypeReturnsError(t *testing.T) {
	src := `{"body": [{"type": "nonsense"}]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	_, err = tmpl.Execute(nil)
	assert.Error(t, err)
}

func TestJSONTemplateInlineLinkAndPageRef(t *testing.T) {
	src := `{"body": [
		{"type": "paragraph", "inlines": [
			{"type": "link", "href": "https://example.com/{{slug}}", "children": [{"type": "text", "text": "here"}]},
			{"type": "pageref", "targetId": "chapter-1", "children": [{"type": "text", "text": "see page"}]},
			{"type": "br"}
		]}
	]}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)

	root, err := tmpl.Execute(map[string]any{"slug": "widgets"})
	require.NoError(t, err)
	inlines := root.Children[0].Inlines
	require.Len(t, inlines, 3)
	assert.Equal(t, idf.InlineHyperlink, inlines[0].IK)
	assert.Equal(t, "https://example.com/widgets", inlines[0].Href)
	assert.Equal(t, idf.InlinePageReference, inlines[1].IK)
	assert.Equal(t, "chapter-1", inlines[1].TargetID)
	assert.Equal(t, idf.InlineLineBreak, inlines[2].IK)
}

func TestParseDimensionVariants(t *testing.T) {
	assert.Equal(t, style.Auto, parseDimension(""))
	assert.Equal(t, style.Auto, parseDimension("auto"))
	assert.Equal(t, style.Percent(50), parseDimension("50%"))
	assert.Equal(t, style.Pt(12), parseDimension("12pt"))
	assert.Equal(t, style.Pt(8), parseDimension("8"))
}

func TestFeaturesPassThrough(t *testing.T) {
	src := `{"features": ["two-pass"], "body": []}`
	tmpl, err := NewJSONParser().Parse(src, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"two-pass"}, tmpl.Features())
}

func TestJSONParserRejectsMalformedJSON(t *testing.T) {
	_, err := NewJSONParser().Parse(`{not valid json`, "")
	assert.Error(t, err)
}
