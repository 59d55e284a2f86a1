package model

import "testing"

func TestTaskFilter_Matches(t *testing.T) {
	open := &Task{ID: "open"}
	checked := &Task{ID: "checked", Checked: true}

	tests := []struct {
		filter   TaskFilter
		task     *Task
		expected bool
	}{
		{TaskFilterAll, open, true},
		{TaskFilterAll, checked, true},
		{TaskFilterOpen, open, true},
		{TaskFilterOpen, checked, false},
		{TaskFilterChecked, open, false},
		{TaskFilterChecked, checked, true},
		{TaskFilterAll, nil, false},
	}

	for _, test := range tests {
		result := test.filter.Matches(test.task)
		if result != test.expected {
			t.Errorf("TaskFilter(%s).Matches(%v) = %v, expected %v", test.filter, test.task, result, test.expected)
		}
	}
}

func TestTaskFilter_UnknownShowsAll(t *testing.T) {
	if !TaskFilter("bogus").Matches(&Task{Checked: true}) {
		t.Error("Unknown filter should behave like TaskFilterAll")
	}
}

func TestTaskFilters_Order(t *testing.T) {
	filters := TaskFilters()
	expected := []TaskFilter{TaskFilterAll, TaskFilterOpen, TaskFilterChecked}

	if len(filters) != len(expected) {
		t.Fatalf("Expected %d filters, got %d", len(expected), len(filters))
	}
	for i := range expected {
		if filters[i] != expected[i] {
			t.Errorf("Filter %d: expected %s, got %s", i, expected[i], filters[i])
		}
	}
}

func TestTaskFilter_String(t *testing.T) {
	if TaskFilterChecked.String() != "Checked" {
		t.Errorf("TaskFilter.String() = %s, expected Checked", TaskFilterChecked.String())
	}
}
