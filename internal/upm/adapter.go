package upm

import (
	"context"
	"fmt"
	"io"
)

// Adapter submits package requests sequentially and logs one outcome per
// package.
type Adapter struct {
	client Client
	out    io.Writer
}

// NewAdapter returns an Adapter logging to out.
func NewAdapter(client Client, out io.Writer) *Adapter {
	return &Adapter{client: client, out: out}
}

// Sync adds every package in adds, then removes every package in removes,
// each request completing before the next is submitted, and finally resolves.
// Individual failures are logged and recorded in the returned requests; the
// error return is non-nil only when ctx is cancelled.
func (a *Adapter) Sync(ctx context.Context, adds, removes []string) ([]Request, error) {
	requests := make([]Request, 0, len(adds)+len(removes))

	for _, id := range adds {
		if err := ctx.Err(); err != nil {
			return requests, err
		}
		requests = append(requests, a.submit(ctx, id, ActionAdd))
	}
	for _, id := range removes {
		if err := ctx.Err(); err != nil {
			return requests, err
		}
		requests = append(requests, a.submit(ctx, id, ActionRemove))
	}

	if err := ctx.Err(); err != nil {
		return requests, err
	}
	// Resolve failures are already logged.
	_ = a.Resolve(ctx)
	return requests, nil
}

// Resolve runs a dependency resolution pass and logs its completion.
func (a *Adapter) Resolve(ctx context.Context) error {
	if err := a.client.Resolve(ctx); err != nil {
		fmt.Fprintf(a.out, "  [FAIL] Failed to resolve packages, Error: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Packages resolved.")
	return nil
}

func (a *Adapter) submit(ctx context.Context, id string, action Action) Request {
	req := Request{ID: id, Action: action}

	var err error
	if action == ActionAdd {
		err = a.client.Add(ctx, id)
	} else {
		err = a.client.Remove(ctx, id)
	}

	verb, past := "add", "added"
	if action == ActionRemove {
		verb, past = "remove", "removed"
	}

	if err != nil {
		req.Status = StatusFailure
		req.Err = err.Error()
		fmt.Fprintf(a.out, "  [FAIL] Failed to %s package: %s, Error: %s\n", verb, id, req.Err)
		return req
	}
	req.Status = StatusSuccess
	fmt.Fprintf(a.out, "  [ OK ] Successfully %s package: %s\n", past, id)
	return req
}
