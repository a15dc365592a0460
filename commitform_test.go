package commitform

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-commitform/pkg/changetype"
	"github.com/goliatone/go-commitform/pkg/config"
	"github.com/goliatone/go-commitform/pkg/form"
	"github.com/goliatone/go-commitform/pkg/prompt"
)

type scriptedDriver struct {
	inputs  map[string][]string
	selects []int
	confirm []bool
	info    []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	queue := d.inputs[cfg.Message]
	if len(queue) == 0 {
		return cfg.Default, nil
	}
	d.inputs[cfg.Message] = queue[1:]
	return queue[0], nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	if len(d.confirm) == 0 {
		return cfg.Default, nil
	}
	v := d.confirm[0]
	d.confirm = d.confirm[1:]
	return v, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return cfg.DefaultIndex, nil
	}
	v := d.selects[0]
	d.selects = d.selects[1:]
	return v, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.info = append(d.info, msg)
	return nil
}

const (
	msgScope    = "What is the scope of this change (e.g. component or file name): (press enter to skip)"
	msgBody     = "Provide a longer description of the change: (press enter to skip)"
	msgBreaking = "Describe the breaking changes:"
	msgIssues   = `Add issue references (e.g. "fix #123", "re #123".):`
)

func TestCompose_FixWithoutScope(t *testing.T) {
	catalog := changetype.MustNew(
		changetype.ChangeType{ID: "feat", Title: "Features", Description: "A new feature"},
		changetype.ChangeType{ID: "fix", Title: "Fixes", Description: "A bug fix"},
	)
	driver := &scriptedDriver{
		selects: []int{1},
		inputs: map[string][]string{
			"Write a short, imperative tense description of the change (max 95 chars):": {"", "Fix bug."},
		},
	}

	res, err := Compose(context.Background(),
		WithCatalog(catalog),
		WithPrompter(prompt.New(prompt.WithDriver(driver))),
	)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if res.Message != "fix: fix bug" {
		t.Fatalf("message = %q", res.Message)
	}
	if diff := cmp.Diff([]string{"Invalid subject: subject is required"}, driver.info); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_AllSections(t *testing.T) {
	cfg := config.Default()
	cfg.MaxLineWidth = 40
	driver := &scriptedDriver{
		selects: []int{0},
		confirm: []bool{true, true},
		inputs: map[string][]string{
			msgScope: {" API "},
			"Write a short, imperative tense description of the change (max 89 chars):": {"Add endpoint"},
			msgBody:     {"adds the endpoint used by the dashboard to list items"},
			msgBreaking: {"BREAKING CHANGE: old api removed"},
			msgIssues:   {"fix #12"},
		},
	}

	res, err := Compose(context.Background(),
		WithConfig(cfg),
		WithPrompter(prompt.New(prompt.WithDriver(driver))),
	)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	want := "feat(api): add endpoint\n\n" +
		"adds the endpoint used by the dashboard\nto list items\n\n" +
		"BREAKING CHANGE: old api removed\n\n" +
		"fix #12"
	if res.Message != want {
		t.Fatalf("unexpected message:\nwant %q\n got %q", want, res.Message)
	}
	for _, absent := range []string{"breakingBody", "issuesBody"} {
		if res.Answers.Has(absent) {
			t.Fatalf("%s should not be asked when a body was given", absent)
		}
	}
}

func TestCompose_PropagatesAbort(t *testing.T) {
	p := form.PrompterFunc(func(context.Context, form.Question) (form.Value, error) {
		return form.Value{}, prompt.ErrAborted
	})
	_, err := Compose(context.Background(), WithPrompter(p))
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestCompose_InvalidCatalogConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Catalog = "unknown"
	if _, err := Compose(context.Background(), WithConfig(cfg)); err == nil {
		t.Fatalf("expected catalog error")
	}
}
