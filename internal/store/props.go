package store

// The record store keeps every entity as a document of typed properties,
// mirroring the hosted store's page/property encoding. Prop is the one
// envelope shape; the accessors below are the single default policy shared
// by all entity mappers: missing or mistyped text decodes to "", numbers to
// 0, checkboxes to false, multi-selects to an empty slice.

type Prop struct {
	Type    string   `json:"type"`
	Text    string   `json:"text,omitempty"`
	Name    string   `json:"name,omitempty"`
	Names   []string `json:"names,omitempty"`
	Number  float64  `json:"number,omitempty"`
	Checked bool     `json:"checked,omitempty"`
	Start   string   `json:"start,omitempty"`
	URL     string   `json:"url,omitempty"`
}

const (
	propTitle       = "title"
	propRichText    = "rich_text"
	propSelect      = "select"
	propMultiSelect = "multi_select"
	propNumber      = "number"
	propCheckbox    = "checkbox"
	propDate        = "date"
	propURL         = "url"
)

type Props map[string]Prop

func (p Props) Title(key string) string {
	if v, ok := p[key]; ok && v.Type == propTitle {
		return v.Text
	}
	return ""
}

func (p Props) RichText(key string) string {
	if v, ok := p[key]; ok && v.Type == propRichText {
		return v.Text
	}
	return ""
}

// Select returns the stored option name, or def when the property is absent.
func (p Props) Select(key, def string) string {
	if v, ok := p[key]; ok && v.Type == propSelect && v.Name != "" {
		return v.Name
	}
	return def
}

func (p Props) MultiSelect(key string) []string {
	if v, ok := p[key]; ok && v.Type == propMultiSelect && v.Names != nil {
		return v.Names
	}
	return []string{}
}

func (p Props) Number(key string) int {
	if v, ok := p[key]; ok && v.Type == propNumber {
		return int(v.Number)
	}
	return 0
}

func (p Props) Checkbox(key string) bool {
	if v, ok := p[key]; ok && v.Type == propCheckbox {
		return v.Checked
	}
	return false
}

func (p Props) Date(key string) string {
	if v, ok := p[key]; ok && v.Type == propDate {
		return v.Start
	}
	return ""
}

func (p Props) Link(key string) string {
	if v, ok := p[key]; ok && v.Type == propURL {
		return v.URL
	}
	return ""
}

func TitleProp(text string) Prop       { return Prop{Type: propTitle, Text: text} }
func RichTextProp(text string) Prop    { return Prop{Type: propRichText, Text: text} }
func SelectProp(name string) Prop      { return Prop{Type: propSelect, Name: name} }
func NumberProp(n int) Prop            { return Prop{Type: propNumber, Number: float64(n)} }
func CheckboxProp(checked bool) Prop   { return Prop{Type: propCheckbox, Checked: checked} }
func DateProp(start string) Prop       { return Prop{Type: propDate, Start: start} }
func URLProp(url string) Prop          { return Prop{Type: propURL, URL: url} }
func MultiSelectProp(names []string) Prop {
	if names == nil {
		names = []string{}
	}
	return Prop{Type: propMultiSelect, Names: names}
}
