package domain

import (
	"reflect"
	"testing"
)

func TestBuildPlan_Grouping(t *testing.T) {
	files := []string{"Finance_Q1.docx", "HR_Handbook.docx", "Finance_Q2.docx"}
	plan := BuildPlan(files, DefaultOptions())

	wantCategories := []string{"Finance", "HR"}
	if got := plan.Categories(); !reflect.DeepEqual(got, wantCategories) {
		t.Fatalf("Categories() = %v, want %v", got, wantCategories)
	}

	finance := plan.Items("Finance")
	if len(finance) != 2 || finance[0].Label != "Q1" || finance[1].Label != "Q2" {
		t.Errorf("Finance items out of input order: %+v", finance)
	}
}

func TestBuildPlan_DuplicateLabelsKept(t *testing.T) {
	files := []string{"Finance_Q1.docx", "in/Finance_Q1.docx"}
	plan := BuildPlan(files, DefaultOptions())

	items := plan.Items("Finance")
	if len(items) != 2 {
		t.Fatalf("expected both duplicate labels kept, got %d items", len(items))
	}
	if items[0].Path == items[1].Path {
		t.Errorf("expected distinct paths, got %q twice", items[0].Path)
	}
}

func TestBuildPlan_EmptyLabelFallsBackToStem(t *testing.T) {
	plan := BuildPlan([]string{"Finance_.docx"}, DefaultOptions())
	items := plan.Items("Finance")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Label != "Finance_" {
		t.Errorf("label = %q, want fallback to stem %q", items[0].Label, "Finance_")
	}
}

func TestBuildPlan_CategorySortIsByteWise(t *testing.T) {
	// Plain string sort: uppercase before lowercase.
	files := []string{"alpha_one.docx", "Beta_two.docx"}
	plan := BuildPlan(files, DefaultOptions())
	want := []string{"Beta", "alpha"}
	if got := plan.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}
