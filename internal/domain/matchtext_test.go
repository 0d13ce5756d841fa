package domain

import "testing"

func TestExpertMatchText_FieldOrder(t *testing.T) {
	e := Expert{
		Name:        "Alice",
		Biography:   "ml researcher",
		Location:    "Berlin",
		DesiredWork: "consulting",
		Publications: []Publication{
			{Title: "Paper One"},
			{Title: "Paper Two"},
		},
	}

	want := "ml researcher Berlin consulting Paper One Paper Two"
	if got := e.MatchText(); got != want {
		t.Errorf("MatchText() = %q, want %q", got, want)
	}
}

func TestExpertMatchText_AbsentFieldsSkipped(t *testing.T) {
	e := Expert{Name: "Bob", Location: "Oslo"}
	if got := e.MatchText(); got != "Oslo" {
		t.Errorf("MatchText() = %q, want %q", got, "Oslo")
	}
}

func TestExpertMatchText_Empty(t *testing.T) {
	e := Expert{Name: "Carol"}
	if got := e.MatchText(); got != "" {
		t.Errorf("MatchText() = %q, want empty", got)
	}
}

func TestExpertMatchText_Deterministic(t *testing.T) {
	e := Expert{Biography: "bio", Publications: []Publication{{Title: "t"}}}
	first := e.MatchText()
	for i := 0; i < 10; i++ {
		if got := e.MatchText(); got != first {
			t.Fatalf("MatchText() changed between calls: %q vs %q", got, first)
		}
	}
}

func TestProjectMatchText_FieldOrder(t *testing.T) {
	p := Project{
		OrganizationName: "Org",
		Description:      "build a model",
		Qualifications:   "phd in ml",
	}

	want := "build a model phd in ml"
	if got := p.MatchText(); got != want {
		t.Errorf("MatchText() = %q, want %q", got, want)
	}
}
