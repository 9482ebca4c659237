package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

const assignmentsPayload = `{"project_assignments": [
	{"id": 1, "is_active": true,
		"client": {"id": 10, "name": "Acme"},
		"project": {"id": 100, "name": "Website", "code": "WEB"},
		"task_assignments": [
			{"id": 1000, "is_active": true, "task": {"id": 5, "name": "Design"}},
			{"id": 1001, "is_active": true, "task": {"id": 6, "name": "Development"}},
			{"id": 1002, "is_active": false, "task": {"id": 7, "name": "Archived"}}
		]},
	{"id": 2, "is_active": true,
		"client": {"id": 10, "name": "Acme"},
		"project": {"id": 101, "name": "App"},
		"task_assignments": [{"id": 1003, "is_active": true, "task": {"id": 8, "name": "QA"}}]},
	{"id": 3, "is_active": false,
		"client": {"id": 11, "name": "Dormant Co"},
		"project": {"id": 102, "name": "Old"},
		"task_assignments": []}
]}`

func TestListActiveProjectsCompact(t *testing.T) {
	t.Parallel()

	b := testBuilder(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/me/project_assignments" {
			t.Errorf("path=%s", r.URL.Path)
		}
		w.Write([]byte(assignmentsPayload))
	})

	result, _, err := b.listActiveProjects(context.Background(), nil, listProjectsInput{})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	msg := resultText(t, result)
	if result.IsError {
		t.Fatalf("unexpected error result: %s", msg)
	}

	for _, want := range []string{"Acme", "Website [project 100, code WEB]", "Design (task 5)", "Development (task 6)", "App [project 101]", "QA (task 8)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("compact output missing %q:\n%s", want, msg)
		}
	}
	for _, unwanted := range []string{"Dormant Co", "Archived"} {
		if strings.Contains(msg, unwanted) {
			t.Errorf("inactive item %q leaked into output:\n%s", unwanted, msg)
		}
	}
}

func TestListActiveProjectsFull(t *testing.T) {
	t.Parallel()

	b := testBuilder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(assignmentsPayload))
	})

	result, _, err := b.listActiveProjects(context.Background(), nil, listProjectsInput{Format: "full"})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	msg := resultText(t, result)

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(msg), &decoded); err != nil {
		t.Fatalf("full output is not JSON: %v\n%s", err, msg)
	}
	if len(decoded) != 2 {
		t.Errorf("want 2 active assignments in raw dump, got %d", len(decoded))
	}
}

func TestListActiveProjectsEmpty(t *testing.T) {
	t.Parallel()

	b := testBuilder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"project_assignments": []}`))
	})

	result, _, err := b.listActiveProjects(context.Background(), nil, listProjectsInput{})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if msg := resultText(t, result); msg != "No active project assignments." {
		t.Errorf("summary: %q", msg)
	}
}
