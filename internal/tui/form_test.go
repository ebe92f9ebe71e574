package tui

import (
	"strings"
	"testing"
)

func TestSimilarTitle(t *testing.T) {
	existing := []string{"Website Relaunch", "Quarterly Report"}

	cases := []struct {
		title string
		want  string
		ok    bool
	}{
		{"Website Relaunch", "Website Relaunch", true},
		{"website relaunch", "Website Relaunch", true},
		{"Website Relauncj", "Website Relaunch", true},
		{"Garden Shed", "", false},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tc := range cases {
		got, ok := similarTitle(tc.title, existing)
		if ok != tc.ok || got != tc.want {
			t.Errorf("similarTitle(%q) = %q, %v; want %q, %v", tc.title, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFormSubmitValidation(t *testing.T) {
	f := newProjectForm(nil)
	f.inputs[fieldTitle].SetValue("Garden")
	f.inputs[fieldDescription].SetValue("plant the beds")
	f.inputs[fieldPeople].SetValue("2")

	res, err := f.submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.title != "Garden" || res.description != "plant the beds" || res.people != 2 {
		t.Errorf("result = %+v", res)
	}
}

func TestFormSubmitRejectsShortDescription(t *testing.T) {
	f := newProjectForm(nil)
	f.inputs[fieldTitle].SetValue("Garden")
	f.inputs[fieldDescription].SetValue("abc")
	f.inputs[fieldPeople].SetValue("2")

	if _, err := f.submit(); err == nil {
		t.Fatal("expected error for short description")
	}
}

func TestFormSubmitRejectsPeopleOutOfRange(t *testing.T) {
	for _, people := range []string{"0", "100", "-1", "two"} {
		f := newProjectForm(nil)
		f.inputs[fieldTitle].SetValue("Garden")
		f.inputs[fieldDescription].SetValue("plant the beds")
		f.inputs[fieldPeople].SetValue(people)

		if _, err := f.submit(); err == nil {
			t.Errorf("people = %q: expected error", people)
		}
	}
}

func TestFormViewShowsWarningForNearDuplicate(t *testing.T) {
	f := newProjectForm([]string{"Website Relaunch"})
	f.inputs[fieldTitle].SetValue("Website Relauncj")
	f.refreshWarning()

	out := f.View(80)
	if !strings.Contains(out, "Website Relaunch") {
		t.Errorf("view missing near-duplicate warning:\n%s", out)
	}
}
