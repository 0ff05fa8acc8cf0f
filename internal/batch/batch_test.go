package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

var errBadFile = errors.New("bad file")

func TestRunIndependentFailures(t *testing.T) {
	t.Parallel()

	files := []string{"a.core", "b.core", "c.core", "d.core"}
	fn := func(_ context.Context, path string) ([]string, error) {
		if path == "c.core" {
			return nil, errBadFile
		}
		return []string{"note"}, nil
	}

	for _, workers := range []int{1, 2, 8} {
		res := Runner{Workers: workers}.Run(context.Background(), files, fn)
		if res.Succeeded != 3 || res.Failed != 1 {
			t.Fatalf("workers=%d: got %d/%d, want 3/1", workers, res.Succeeded, res.Failed)
		}
		if len(res.Outcomes) != len(files) {
			t.Fatalf("workers=%d: %d outcomes", workers, len(res.Outcomes))
		}
		for i, o := range res.Outcomes {
			if o.Path != files[i] {
				t.Fatalf("workers=%d: outcome %d holds %q, input order lost", workers, i, o.Path)
			}
			if (o.Path == "c.core") != (o.Err != nil) {
				t.Fatalf("workers=%d: %s: unexpected err %v", workers, o.Path, o.Err)
			}
		}
		if !errors.Is(res.Outcomes[2].Err, errBadFile) {
			t.Fatalf("workers=%d: error kind lost: %v", workers, res.Outcomes[2].Err)
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	t.Parallel()

	res := Runner{}.Run(context.Background(), nil, func(context.Context, string) ([]string, error) {
		t.Fatal("fn called for empty input")
		return nil, nil
	})
	if res.Succeeded != 0 || res.Failed != 0 || len(res.Outcomes) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRunCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	files := make([]string, 16)
	for i := range files {
		files[i] = fmt.Sprintf("%d.core", i)
	}

	var once sync.Once
	fn := func(_ context.Context, path string) ([]string, error) {
		// Cancel during the very first file; it must still complete.
		once.Do(cancel)
		return []string{"done " + path}, nil
	}

	res := Runner{Workers: 1}.Run(ctx, files, fn)

	if res.Outcomes[0].Err != nil {
		t.Fatalf("in-flight file did not run to completion: %v", res.Outcomes[0].Err)
	}
	if len(res.Outcomes[0].Warnings) != 1 || !strings.HasSuffix(res.Outcomes[0].Warnings[0], "0.core") {
		t.Fatalf("unexpected warnings: %v", res.Outcomes[0].Warnings)
	}
	if res.Failed == 0 {
		t.Fatal("expected undispatched files to carry the context error")
	}
	for _, o := range res.Outcomes[res.Succeeded:] {
		if !errors.Is(o.Err, context.Canceled) {
			t.Fatalf("%s: expected context.Canceled, got %v", o.Path, o.Err)
		}
	}
}

func TestRunDeterministicPerFile(t *testing.T) {
	t.Parallel()

	files := []string{"x.core", "y.core", "z.core"}
	fn := func(_ context.Context, path string) ([]string, error) {
		if path == "y.core" {
			return nil, errBadFile
		}
		return nil, nil
	}

	sequential := Runner{Workers: 1}.Run(context.Background(), files, fn)
	parallel := Runner{Workers: 3}.Run(context.Background(), files, fn)
	for i := range files {
		if (sequential.Outcomes[i].Err == nil) != (parallel.Outcomes[i].Err == nil) {
			t.Fatalf("outcome %d differs between sequential and parallel runs", i)
		}
	}
}
