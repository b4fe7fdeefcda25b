package store

import (
	"encoding/json"
	"testing"
)

func TestPropsDefaults(t *testing.T) {
	p := Props{}
	if got := p.Title("고객명"); got != "" {
		t.Fatalf("expected empty title, got %q", got)
	}
	if got := p.RichText("메모"); got != "" {
		t.Fatalf("expected empty rich text, got %q", got)
	}
	if got := p.Select("상태", "리드"); got != "리드" {
		t.Fatalf("expected select default, got %q", got)
	}
	if got := p.Number("사용횟수"); got != 0 {
		t.Fatalf("expected zero number, got %d", got)
	}
	if p.Checkbox("활성화") {
		t.Fatalf("expected unchecked checkbox")
	}
	if got := p.MultiSelect("키워드"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
	if got := p.Date("등록일"); got != "" {
		t.Fatalf("expected empty date, got %q", got)
	}
}

func TestPropsMistypedFallsBack(t *testing.T) {
	p := Props{
		"상태":   TitleProp("계약"),
		"사용횟수": RichTextProp("10"),
	}
	if got := p.Select("상태", "리드"); got != "리드" {
		t.Fatalf("expected default for mistyped select, got %q", got)
	}
	if got := p.Number("사용횟수"); got != 0 {
		t.Fatalf("expected zero for mistyped number, got %d", got)
	}
}

func TestPropsRoundTrip(t *testing.T) {
	in := Props{
		"제목":   TitleProp("첫 인사"),
		"내용":   RichTextProp("안녕하세요"),
		"카테고리": SelectProp("인사"),
		"키워드":  MultiSelectProp([]string{"인사", "감사"}),
		"사용횟수": NumberProp(3),
		"활성화":  CheckboxProp(true),
		"등록일":  DateProp("2025-01-15"),
		"URL":  URLProp("https://example.com/doc"),
	}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Props
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Title("제목") != "첫 인사" {
		t.Fatalf("title lost: %q", out.Title("제목"))
	}
	if out.Select("카테고리", "기타") != "인사" {
		t.Fatalf("select lost: %q", out.Select("카테고리", "기타"))
	}
	if got := out.MultiSelect("키워드"); len(got) != 2 || got[0] != "인사" {
		t.Fatalf("multi select lost: %v", got)
	}
	if out.Number("사용횟수") != 3 {
		t.Fatalf("number lost: %d", out.Number("사용횟수"))
	}
	if !out.Checkbox("활성화") {
		t.Fatalf("checkbox lost")
	}
	if out.Date("등록일") != "2025-01-15" {
		t.Fatalf("date lost: %q", out.Date("등록일"))
	}
	if out.Link("URL") != "https://example.com/doc" {
		t.Fatalf("url lost: %q", out.Link("URL"))
	}
}

func TestMultiSelectPropNil(t *testing.T) {
	p := MultiSelectProp(nil)
	if p.Names == nil {
		t.Fatalf("expected non-nil names")
	}
}
